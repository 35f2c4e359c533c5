package models

import "time"

type StatusSuspend string

const (
	SuspendAktif      StatusSuspend = "aktif"
	SuspendKadaluarsa StatusSuspend = StatusKadaluarsa
)

// SuspendUser blocks a user from logging in while status is aktif. Expiry is
// driven by the scheduled /expire-suspensions invocation, not by this row.
type SuspendUser struct {
	ID           uint          `json:"id" gorm:"primarykey"`
	UserID       uint          `json:"user_id" gorm:"not null;index"`
	User         *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Status       StatusSuspend `json:"status" gorm:"type:varchar(20);default:'aktif';index"`
	Alasan       string        `json:"alasan"`
	MulaiSuspend time.Time     `json:"mulai_suspend"`
	LepasSuspend *time.Time    `json:"lepas_suspend"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
