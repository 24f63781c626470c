package storage

import (
	"fmt"

	"github.com/thirdsgames/autocuber"
)

// MoveRepository provides access to a session's recorded move list.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// InsertAll stores a session's moves in order.
func (r *MoveRepository) InsertAll(sessionID string, moves []autocuber.Move) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO session_moves (session_id, idx, notation) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range moves {
		if _, err := stmt.Exec(sessionID, i, m.Notation()); err != nil {
			return fmt.Errorf("failed to insert move %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// ListForSession returns a session's moves in order.
func (r *MoveRepository) ListForSession(sessionID string) ([]autocuber.Move, error) {
	rows, err := r.db.Query(`
		SELECT notation FROM session_moves WHERE session_id = ? ORDER BY idx
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}
	defer rows.Close()

	var moves []autocuber.Move
	for rows.Next() {
		var notation string
		if err := rows.Scan(&notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		m, err := autocuber.ParseMove(notation)
		if err != nil {
			return nil, fmt.Errorf("stored move %q: %w", notation, err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}
