package persistence

import (
	"time"
)

// ShipSnapshotModel stores one ship's property bag for a session
type ShipSnapshotModel struct {
	Session   string    `gorm:"column:session;primaryKey;not null"`
	ShipID    int       `gorm:"column:ship_id;primaryKey;autoIncrement:false"`
	Name      string    `gorm:"column:name;not null"`
	Destroyed bool      `gorm:"column:destroyed;default:false"`
	Bag       string    `gorm:"column:bag;type:text;not null"` // JSON object of string values
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (ShipSnapshotModel) TableName() string {
	return "ship_snapshots"
}

// TransactionModel represents the transactions table
type TransactionModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	Session         string    `gorm:"column:session;not null;index:idx_transactions_session_ship"`
	ShipID          int       `gorm:"column:ship_id;not null;index:idx_transactions_session_ship"`
	Turn            int       `gorm:"column:turn;not null"`
	Timestamp       time.Time `gorm:"column:timestamp;not null"`
	TransactionType string    `gorm:"column:transaction_type;not null"`
	Category        string    `gorm:"column:category;not null"`
	Amount          int       `gorm:"column:amount;not null"`
	BalanceBefore   int       `gorm:"column:balance_before;not null"`
	BalanceAfter    int       `gorm:"column:balance_after;not null"`
	Description     string    `gorm:"column:description"`
	Counterparty    string    `gorm:"column:counterparty"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

// EventModel is one persisted notification
type EventModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Session   string    `gorm:"column:session;not null;index"`
	Turn      int       `gorm:"column:turn;not null"`
	ShipID    int       `gorm:"column:ship_id"`
	Message   string    `gorm:"column:message;not null"`
	Sound     string    `gorm:"column:sound"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (EventModel) TableName() string {
	return "events"
}
