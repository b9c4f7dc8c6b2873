package database

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"absensi/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// scanParticipant reads one row in participantColumns order.
func scanParticipant(row pgx.Row) (*entities.Participant, error) {
	var p entities.Participant
	var createdAt, updatedAt pgtype.Timestamptz
	if err := row.Scan(&p.ID, &p.Name, &p.NIK, &p.Token, &p.Attended, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	p.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return &p, nil
}
