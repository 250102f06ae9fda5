package domain

import "time"

type Department struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}
