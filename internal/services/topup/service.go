package topup

import (
	"fmt"
	"strings"

	"github.com/chayapatp/topupstore/internal/model"
)

// Result is the outcome of a simulated top-up. No balance or ledger is
// ever mutated; the message is the entire effect.
type Result struct {
	OK      bool
	Message string
}

// Service validates top-up requests and formats their receipts
type Service struct{}

// New creates a new top-up Service
func New() *Service {
	return &Service{}
}

// Submit validates the draft and produces the notification for it.
// A non-empty target user id and a positive amount yield a success
// receipt; anything else yields the generic validation message.
func (s *Service) Submit(game *model.Game, userID string, amount int) Result {
	userID = strings.TrimSpace(userID)
	if game == nil || userID == "" || amount <= 0 {
		return Result{
			OK:      false,
			Message: "กรุณากรอกไอดีผู้ใช้และจำนวนเงินให้ถูกต้อง",
		}
	}

	return Result{
		OK:      true,
		Message: fmt.Sprintf("เติมเงินเกม %s ให้ไอดี %s จำนวน %d บาท สำเร็จ", game.Name, userID, amount),
	}
}
