package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/depastori/clinica-psi/internal/audit"
	"github.com/depastori/clinica-psi/internal/config"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/handlers"
	"github.com/depastori/clinica-psi/internal/middleware"
	"github.com/depastori/clinica-psi/internal/render"
	"github.com/depastori/clinica-psi/internal/timezone"
	ucCharge "github.com/depastori/clinica-psi/internal/usecase/charge"
	ucEntitlement "github.com/depastori/clinica-psi/internal/usecase/entitlement"
	ucReceipt "github.com/depastori/clinica-psi/internal/usecase/receipt"
)

// Deps são os singletons montados no main.
type Deps struct {
	DB      *gorm.DB
	Store   ledger.Store
	Audit   *audit.Dispatcher
	Archive render.Archive
	Clock   timezone.Clock
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps) {

	// ======================================================
	// INFRA
	// ======================================================
	store := deps.Store
	auditDispatcher := deps.Audit
	clock := deps.Clock
	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// USE CASES: CHARGES
	// ======================================================
	createManualUC := ucCharge.NewCreateManualCharge(store, auditDispatcher, clock, cfg.NumberRetries)
	createAutomaticUC := ucCharge.NewCreateAutomaticCharge(store, auditDispatcher, clock, cfg.NumberRetries, cfg.DefaultDueDays)
	calculateUC := ucCharge.NewCalculateChargeAmount(store)
	markPaidUC := ucCharge.NewMarkChargePaid(store, auditDispatcher, clock, cfg.NumberRetries)
	cancelChargeUC := ucCharge.NewCancelCharge(store, auditDispatcher, clock)
	deleteChargeUC := ucCharge.NewDeleteCharge(store, auditDispatcher, clock)
	listChargesUC := ucCharge.NewListCharges(store, clock)
	getChargeUC := ucCharge.NewGetCharge(store, clock)
	chargeDocumentUC := ucCharge.NewRenderChargeDocument(store, deps.Archive, clock)

	// ======================================================
	// USE CASES: RECEIPTS
	// ======================================================
	issueReceiptUC := ucReceipt.NewIssueManualReceipt(store, auditDispatcher, clock, cfg.NumberRetries)
	deleteReceiptUC := ucReceipt.NewDeleteReceipt(store, auditDispatcher)
	listReceiptsUC := ucReceipt.NewListReceipts(store)
	getReceiptUC := ucReceipt.NewGetReceipt(store)
	receiptDocumentUC := ucReceipt.NewRenderReceiptDocument(store, deps.Archive, clock)

	// ======================================================
	// USE CASES: PACKAGES
	// ======================================================
	createPackageUC := ucEntitlement.NewCreatePackage(store, auditDispatcher, clock)
	consumeSessionUC := ucEntitlement.NewConsumeSession(store, auditDispatcher, clock)
	updatePackageUC := ucEntitlement.NewUpdatePackage(store, auditDispatcher)
	cancelPackageUC := ucEntitlement.NewCancelPackage(store, auditDispatcher)
	deletePackageUC := ucEntitlement.NewDeletePackage(store, auditDispatcher)
	listPackagesUC := ucEntitlement.NewListPackages(store)
	getPackageUC := ucEntitlement.NewGetPackage(store)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.DB, cfg)
	meHandler := handlers.NewMeHandler(store.Directory())
	patientHandler := handlers.NewPatientHandler(store.Directory())

	chargeHandler := handlers.NewChargeHandler(
		createManualUC,
		createAutomaticUC,
		calculateUC,
		markPaidUC,
		cancelChargeUC,
		deleteChargeUC,
		listChargesUC,
		getChargeUC,
		chargeDocumentUC,
		loc,
	)

	receiptHandler := handlers.NewReceiptHandler(
		issueReceiptUC,
		deleteReceiptUC,
		listReceiptsUC,
		getReceiptUC,
		receiptDocumentUC,
		loc,
	)

	packageHandler := handlers.NewPackageHandler(
		createPackageUC,
		consumeSessionUC,
		updatePackageUC,
		cancelPackageUC,
		deletePackageUC,
		listPackagesUC,
		getPackageUC,
		loc,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(deps.DB), loc)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("", meHandler.GetMe)
			secured.GET("/patients", patientHandler.Search)

			// ------------------------------
			// CHARGES
			// ------------------------------
			secured.POST("/charges/manual", chargeHandler.CreateManual)
			secured.POST("/charges/automatic", chargeHandler.CreateAutomatic)
			secured.POST("/charges/calculate", chargeHandler.Calculate)
			secured.GET("/charges", chargeHandler.List)
			secured.GET("/charges/export", chargeHandler.Export)
			secured.GET("/charges/:id", chargeHandler.Get)
			secured.GET("/charges/:id/document", chargeHandler.Document)
			secured.PATCH("/charges/:id/pay", chargeHandler.MarkPaid)
			secured.PATCH("/charges/:id/cancel", chargeHandler.Cancel)
			secured.DELETE("/charges/:id", chargeHandler.Delete)

			// ------------------------------
			// RECEIPTS
			// ------------------------------
			secured.POST("/receipts", receiptHandler.Issue)
			secured.GET("/receipts", receiptHandler.List)
			secured.GET("/receipts/:id", receiptHandler.Get)
			secured.GET("/receipts/:id/document", receiptHandler.Document)
			secured.DELETE("/receipts/:id", receiptHandler.Delete)

			// ------------------------------
			// PACKAGES
			// ------------------------------
			secured.POST("/packages", packageHandler.Create)
			secured.GET("/packages", packageHandler.List)
			secured.GET("/packages/:id", packageHandler.Get)
			secured.PATCH("/packages/:id", packageHandler.Update)
			secured.POST("/packages/:id/consume", packageHandler.Consume)
			secured.PATCH("/packages/:id/cancel", packageHandler.Cancel)
			secured.DELETE("/packages/:id", packageHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
