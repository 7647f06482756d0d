package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(conn PgConnection) *GoalsRepository {
	mustPing(conn, "goalsRepo")
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) (int64, error) {
	var id int64
	row := gr.conn.QueryRow(ctx, `INSERT INTO goals (phone_number, goal_type, goal) VALUES ($1, $2, $3) RETURNING id;`,
		goal.PhoneNumber, goal.GoalType, goal.Goal,
	)
	if err := row.Scan(&id); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("creating goal db error: " + err.Error())
	}
	return id, nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id int64) (*entity.Goal, error) {
	var goal entity.Goal
	row := gr.conn.QueryRow(ctx, `SELECT id, phone_number, goal_type, goal FROM goals WHERE id = $1;`, id)
	if err := row.Scan(&goal.ID, &goal.PhoneNumber, &goal.GoalType, &goal.Goal); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting goal by id error: " + err.Error())
	}
	return &goal, nil
}

func (gr *GoalsRepository) ListByPhone(ctx context.Context, phone string) ([]*entity.Goal, error) {
	rows, err := gr.conn.Query(ctx, `SELECT id, phone_number, goal_type, goal FROM goals WHERE phone_number = $1 ORDER BY id;`, phone)
	if err != nil {
		return nil, errors.New("listing goals error: " + err.Error())
	}
	defer rows.Close()
	goals := make([]*entity.Goal, 0)
	for rows.Next() {
		g := entity.Goal{}
		if err = rows.Scan(&g.ID, &g.PhoneNumber, &g.GoalType, &g.Goal); err != nil {
			return nil, errors.New("unmarshalling goal error: " + err.Error())
		}
		goals = append(goals, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning goals: " + err.Error())
	}
	return goals, nil
}

func (gr *GoalsRepository) Update(ctx context.Context, goal *entity.Goal) error {
	ct, err := gr.conn.Exec(ctx, `UPDATE goals SET goal_type = $1, goal = $2 WHERE id = $3;`, goal.GoalType, goal.Goal, goal.ID)
	if err != nil {
		return errors.New("updating goal error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

func (gr *GoalsRepository) Delete(ctx context.Context, id int64) error {
	ct, err := gr.conn.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting goal error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

func (gr *GoalsRepository) MarkNotified(ctx context.Context, goalID int64, day time.Time) (bool, error) {
	ct, err := gr.conn.Exec(ctx, `INSERT INTO goal_notifications (goal_id, notified_on) VALUES ($1, $2) ON CONFLICT DO NOTHING;`,
		goalID, pgtype.Date{Time: day, Valid: true},
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return false, errorvalues.ErrGoalNotFound
		}
		return false, errors.New("marking goal notification error: " + err.Error())
	}
	return ct.RowsAffected() > 0, nil
}
