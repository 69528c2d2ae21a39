package keypad

import "time"

// PressKeyRequest — одно нажатие (для POST /api/v1/sessions/:id/keys).
// Клавиша — ровно один символ: 0-9 + - * / = . n b c C.
type PressKeyRequest struct {
	Key string `json:"key" binding:"required"`
}

// DisplayResponse — ответ с текущим дисплеем сессии.
type DisplayResponse struct {
	Display string `json:"display"`
	Message string `json:"message,omitempty"`
}

// HistoryItem — одно завершённое вычисление (для GET /api/v1/sessions/:id/history).
type HistoryItem struct {
	ID        int       `json:"id"`
	SessionID string    `json:"session_id"`
	Operand0  string    `json:"operand0"`
	Operand1  string    `json:"operand1"`
	Operator  string    `json:"operator"`
	Result    string    `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse — ответ со списком вычислений.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}
