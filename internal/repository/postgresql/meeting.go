package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffledger/attendance-backend-go/internal/domain/meeting"
	"github.com/staffledger/attendance-backend-go/internal/pkg/database"
)

type meetingSeriesRepositoryImpl struct {
	db *database.DB
}

func NewMeetingSeriesRepository(db *database.DB) meeting.SeriesRepository {
	return &meetingSeriesRepositoryImpl{db: db}
}

const seriesColumns = `s.id, s.title, s.description, s.organizer_id, s.recurrence_type,
	   s.recurrence_rule, s.start_date, s.end_date, s.start_time, s.end_time,
	   s.created_at, s.updated_at`

func scanSeries(row pgx.Row) (meeting.Series, error) {
	var series meeting.Series
	err := row.Scan(
		&series.ID, &series.Title, &series.Description, &series.OrganizerID, &series.RecurrenceType,
		&series.RecurrenceRule, &series.StartDate, &series.EndDate, &series.StartTime, &series.EndTime,
		&series.CreatedAt, &series.UpdatedAt,
	)
	return series, err
}

// Create implements meeting.SeriesRepository.
func (r *meetingSeriesRepositoryImpl) Create(ctx context.Context, series meeting.Series) (meeting.Series, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO meeting_series (title, description, organizer_id, recurrence_type,
			recurrence_rule, start_date, end_date, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		series.Title, series.Description, series.OrganizerID, series.RecurrenceType,
		series.RecurrenceRule, series.StartDate, series.EndDate, series.StartTime, series.EndTime,
	).Scan(&series.ID, &series.CreatedAt, &series.UpdatedAt)
	if err != nil {
		return meeting.Series{}, fmt.Errorf("failed to create meeting series: %w", err)
	}

	return series, nil
}

// GetByID implements meeting.SeriesRepository.
func (r *meetingSeriesRepositoryImpl) GetByID(ctx context.Context, id string) (meeting.Series, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + seriesColumns + `
		FROM meeting_series s
		WHERE s.id = $1`

	series, err := scanSeries(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return meeting.Series{}, meeting.ErrSeriesNotFound
		}
		return meeting.Series{}, err
	}

	return series, nil
}

// List implements meeting.SeriesRepository.
func (r *meetingSeriesRepositoryImpl) List(ctx context.Context, page, limit int) ([]meeting.Series, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM meeting_series`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count meeting series: %w", err)
	}

	if limit == 0 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := `SELECT ` + seriesColumns + `
		FROM meeting_series s
		ORDER BY s.start_date DESC
		LIMIT $1 OFFSET $2`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query meeting series: %w", err)
	}
	defer rows.Close()

	var seriesList []meeting.Series
	for rows.Next() {
		series, err := scanSeries(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan meeting series: %w", err)
		}
		seriesList = append(seriesList, series)
	}

	return seriesList, total, rows.Err()
}

// Delete implements meeting.SeriesRepository. Instances cascade via FK.
func (r *meetingSeriesRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM meeting_series WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete meeting series: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return meeting.ErrSeriesNotFound
	}

	return nil
}

type meetingInstanceRepositoryImpl struct {
	db *database.DB
}

func NewMeetingInstanceRepository(db *database.DB) meeting.InstanceRepository {
	return &meetingInstanceRepositoryImpl{db: db}
}

const instanceColumns = `i.id, i.series_id, i.instance_date, i.start_time, i.end_time,
	   i.cancelled, i.created_at, i.updated_at,
	   s.title`

const instanceJoins = `
	FROM meeting_instances i
	LEFT JOIN meeting_series s ON s.id = i.series_id`

func scanInstance(row pgx.Row) (meeting.Instance, error) {
	var instance meeting.Instance
	err := row.Scan(
		&instance.ID, &instance.SeriesID, &instance.InstanceDate, &instance.StartTime, &instance.EndTime,
		&instance.Cancelled, &instance.CreatedAt, &instance.UpdatedAt,
		&instance.Title,
	)
	return instance, err
}

// BulkCreate implements meeting.InstanceRepository.
func (r *meetingInstanceRepositoryImpl) BulkCreate(ctx context.Context, instances []meeting.Instance) ([]meeting.Instance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO meeting_instances (series_id, instance_date, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	created := make([]meeting.Instance, 0, len(instances))
	for _, instance := range instances {
		err := q.QueryRow(ctx, query,
			instance.SeriesID, instance.InstanceDate, instance.StartTime, instance.EndTime,
		).Scan(&instance.ID, &instance.CreatedAt, &instance.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to bulk create meeting instances: %w", err)
		}
		created = append(created, instance)
	}

	return created, nil
}

// GetByID implements meeting.InstanceRepository.
func (r *meetingInstanceRepositoryImpl) GetByID(ctx context.Context, id string) (meeting.Instance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + instanceColumns + instanceJoins + `
		WHERE i.id = $1`

	instance, err := scanInstance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return meeting.Instance{}, meeting.ErrInstanceNotFound
		}
		return meeting.Instance{}, err
	}

	return instance, nil
}

// List implements meeting.InstanceRepository.
func (r *meetingInstanceRepositoryImpl) List(ctx context.Context, filter meeting.InstanceFilter) ([]meeting.Instance, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.SeriesID != nil && *filter.SeriesID != "" {
		baseWhere += fmt.Sprintf(" AND i.series_id = $%d", argIdx)
		args = append(args, *filter.SeriesID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND i.instance_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND i.instance_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM meeting_instances i WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count meeting instances: %w", err)
	}

	selectQuery := fmt.Sprintf(`SELECT `+instanceColumns+instanceJoins+`
		WHERE %s
		ORDER BY i.instance_date ASC, i.start_time ASC
		LIMIT $%d OFFSET $%d`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query meeting instances: %w", err)
	}
	defer rows.Close()

	var instances []meeting.Instance
	for rows.Next() {
		instance, err := scanInstance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan meeting instance: %w", err)
		}
		instances = append(instances, instance)
	}

	return instances, total, rows.Err()
}

// ListOnDate implements meeting.InstanceRepository.
func (r *meetingInstanceRepositoryImpl) ListOnDate(ctx context.Context, date string) ([]meeting.Instance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + instanceColumns + instanceJoins + `
		WHERE i.instance_date = $1 AND i.cancelled = FALSE
		ORDER BY i.start_time ASC`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query meeting instances: %w", err)
	}
	defer rows.Close()

	var instances []meeting.Instance
	for rows.Next() {
		instance, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meeting instance: %w", err)
		}
		instances = append(instances, instance)
	}

	return instances, rows.Err()
}

// SetCancelled implements meeting.InstanceRepository.
func (r *meetingInstanceRepositoryImpl) SetCancelled(ctx context.Context, id string, cancelled bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE meeting_instances
		SET cancelled = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, cancelled, id)
	if err != nil {
		return fmt.Errorf("failed to cancel meeting instance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return meeting.ErrInstanceNotFound
	}

	return nil
}

type meetingAttendeeRepositoryImpl struct {
	db *database.DB
}

func NewMeetingAttendeeRepository(db *database.DB) meeting.AttendeeRepository {
	return &meetingAttendeeRepositoryImpl{db: db}
}

// BulkCreate implements meeting.AttendeeRepository.
func (r *meetingAttendeeRepositoryImpl) BulkCreate(ctx context.Context, attendees []meeting.Attendee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO meeting_attendees (instance_id, employee_id, attended)
		VALUES ($1, $2, $3)
		ON CONFLICT (instance_id, employee_id) DO NOTHING
	`

	for _, attendee := range attendees {
		_, err := q.Exec(ctx, query, attendee.InstanceID, attendee.EmployeeID, attendee.Attended)
		if err != nil {
			return fmt.Errorf("failed to bulk create meeting attendees: %w", err)
		}
	}

	return nil
}

// Upsert implements meeting.AttendeeRepository.
func (r *meetingAttendeeRepositoryImpl) Upsert(ctx context.Context, attendee meeting.Attendee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO meeting_attendees (instance_id, employee_id, attended)
		VALUES ($1, $2, $3)
		ON CONFLICT (instance_id, employee_id)
		DO UPDATE SET attended = EXCLUDED.attended, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, attendee.InstanceID, attendee.EmployeeID, attendee.Attended); err != nil {
		return fmt.Errorf("failed to upsert meeting attendee: %w", err)
	}

	return nil
}

// ListByInstance implements meeting.AttendeeRepository.
func (r *meetingAttendeeRepositoryImpl) ListByInstance(ctx context.Context, instanceID string) ([]meeting.Attendee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.instance_id, a.employee_id, a.attended, a.created_at, a.updated_at
		FROM meeting_attendees a
		WHERE a.instance_id = $1
		ORDER BY a.created_at ASC
	`

	rows, err := q.Query(ctx, query, instanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query meeting attendees: %w", err)
	}
	defer rows.Close()

	var attendees []meeting.Attendee
	for rows.Next() {
		var attendee meeting.Attendee
		err := rows.Scan(
			&attendee.ID, &attendee.InstanceID, &attendee.EmployeeID, &attendee.Attended,
			&attendee.CreatedAt, &attendee.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meeting attendee: %w", err)
		}
		attendees = append(attendees, attendee)
	}

	return attendees, rows.Err()
}
