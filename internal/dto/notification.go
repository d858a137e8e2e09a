package dto

// BroadcastResponseDTO acknowledges a fanned-out broadcast. Queued is always
// true on success; no delivery happens beyond recording the rows.
type BroadcastResponseDTO struct {
	Queued          bool     `json:"queued"`
	NotificationIDs []string `json:"notification_ids"`
}
