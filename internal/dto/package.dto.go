package dto

type ConsumeResult struct {
	UsedSessions      int    `json:"used_sessions"`
	RemainingSessions int    `json:"remaining_sessions"`
	Status            string `json:"status"`
}
