package response

import "freegym_settlement/internal/domain/entities"

type DepositResponse struct {
	UserID       string `json:"user_id"`
	TotalLessons int    `json:"total_lessons"`
	UsedLessons  int    `json:"used_lessons"`
	Remaining    int    `json:"remaining"`
}

func FromDeposit(d entities.LessonDeposit) DepositResponse {
	return DepositResponse{
		UserID:       d.UserID,
		TotalLessons: d.TotalLessons,
		UsedLessons:  d.UsedLessons,
		Remaining:    d.Remaining(),
	}
}
