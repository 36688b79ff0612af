package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"timesheet/internal/config"
)

// Repository is the persistence surface the workflow engine and query layer
// operate on. Both *Store and the handle passed to Transact implement it, so
// the daily-cap check and the write it guards can share one transaction.
type Repository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id string) (*Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter Filter) ([]*Task, error)
	SumHoursOn(ctx context.Context, employeeID string, date Date, excludeTaskID string) (Hours, error)
}

// Transactor runs a function against a Repository inside a single write
// transaction.
type Transactor interface {
	Repository
	Transact(ctx context.Context, fn func(Repository) error) error
}

type runner interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type queries struct {
	r runner
}

// Store manages task persistence backed by SQLite.
type Store struct {
	queries
	db   *sql.DB
	path string
}

// Open initializes or connects to the task database and applies the schema.
// Transactions are opened in immediate mode so a write lock is taken up
// front; concurrent writers queue on the busy timeout instead of both
// reading a stale daily total.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "timesheet.db")
	// busy_timeout and foreign_keys are per-connection, so they ride the DSN
	// and apply to every pooled connection.
	dsn := "file:" + dbPath + "?_txlock=immediate&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// WAL is persistent in the database file; applying it once is enough.
	if _, execErr := db.Exec("PRAGMA journal_mode=WAL"); execErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragma journal_mode: %w", execErr)
	}

	store := &Store{queries: queries{r: db}, db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Transact runs fn inside a single write transaction. The Repository handed
// to fn sees and produces state that commits or rolls back atomically.
func (s *Store) Transact(ctx context.Context, fn func(Repository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&queries{r: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Create inserts a new task record.
func (q *queries) Create(ctx context.Context, task *Task) error {
	if task == nil {
		return errors.New("task is nil")
	}
	now := time.Now().UTC()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = now

	_, err := q.r.ExecContext(
		ctx,
		`INSERT INTO tasks (
            id, employee_id, title, description, tags, hours, date,
            status, manager_comment, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID,
		task.EmployeeID,
		task.Title,
		nullableString(task.Description),
		nullableString(task.Tags),
		int64(task.Hours),
		string(task.Date),
		task.Status,
		nullableString(task.ManagerComment),
		task.CreatedAt.Format(time.RFC3339Nano),
		task.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID fetches a task by identifier. A missing task yields (nil, nil).
func (q *queries) GetByID(ctx context.Context, id string) (*Task, error) {
	row := q.r.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// Update persists changes to an existing task.
func (q *queries) Update(ctx context.Context, task *Task) error {
	if task == nil {
		return errors.New("task is nil")
	}
	task.UpdatedAt = time.Now().UTC()
	_, err := q.r.ExecContext(
		ctx,
		`UPDATE tasks
         SET employee_id = ?, title = ?, description = ?, tags = ?, hours = ?,
             date = ?, status = ?, manager_comment = ?, updated_at = ?
         WHERE id = ?`,
		task.EmployeeID,
		task.Title,
		nullableString(task.Description),
		nullableString(task.Tags),
		int64(task.Hours),
		string(task.Date),
		task.Status,
		nullableString(task.ManagerComment),
		task.UpdatedAt.Format(time.RFC3339Nano),
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete removes a task by identifier and reports whether a row was removed.
func (q *queries) Delete(ctx context.Context, id string) (bool, error) {
	res, err := q.r.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// List returns tasks matching the filter ordered by creation time then id.
func (q *queries) List(ctx context.Context, filter Filter) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	var (
		clauses []string
		args    []any
	)
	if filter.EmployeeID != "" {
		clauses = append(clauses, "employee_id = ?")
		args = append(args, filter.EmployeeID)
	}
	if filter.Date != "" {
		clauses = append(clauses, "date = ?")
		args = append(args, string(filter.Date))
	}
	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Tags != "" {
		clauses = append(clauses, "instr(COALESCE(tags, ''), ?) > 0")
		args = append(args, filter.Tags)
	}
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at, id`

	rows, err := q.r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var result []*Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, task)
	}
	return result, rows.Err()
}

// SumHoursOn totals the hours an employee has logged on a date, excluding
// the given task id when re-validating an update.
func (q *queries) SumHoursOn(ctx context.Context, employeeID string, date Date, excludeTaskID string) (Hours, error) {
	var total int64
	err := q.r.QueryRowContext(
		ctx,
		`SELECT COALESCE(SUM(hours), 0) FROM tasks WHERE employee_id = ? AND date = ? AND id != ?`,
		employeeID,
		string(date),
		excludeTaskID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum hours: %w", err)
	}
	return Hours(total), nil
}

// CountByStatus returns a count of tasks grouped by status.
func (q *queries) CountByStatus(ctx context.Context) (map[Status]int, error) {
	rows, err := q.r.QueryContext(ctx, `SELECT status, COUNT(1) FROM tasks GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[Status]int)
	for rows.Next() {
		var status Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

const taskColumns = "id, employee_id, title, description, tags, hours, date, status, manager_comment, created_at, updated_at"

func scanTask(scanner interface{ Scan(dest ...any) error }) (*Task, error) {
	var (
		id             string
		employeeID     string
		title          string
		description    sql.NullString
		tags           sql.NullString
		hours          int64
		date           string
		statusStr      string
		managerComment sql.NullString
		createdRaw     sql.NullString
		updatedRaw     sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&employeeID,
		&title,
		&description,
		&tags,
		&hours,
		&date,
		&statusStr,
		&managerComment,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	task := &Task{
		ID:             id,
		EmployeeID:     employeeID,
		Title:          title,
		Description:    description.String,
		Tags:           tags.String,
		Hours:          Hours(hours),
		Date:           Date(date),
		Status:         Status(statusStr),
		ManagerComment: managerComment.String,
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		task.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		task.UpdatedAt = updated
	}
	return task, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
