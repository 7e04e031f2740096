package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffledger/attendance-backend-go/internal/domain/project"
	"github.com/staffledger/attendance-backend-go/internal/pkg/database"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

const projectColumns = `p.id, p.name, p.description, p.status, p.lead_id,
	   p.start_date, p.end_date, p.created_at, p.updated_at, p.deleted_at,
	   COUNT(m.id) AS member_count`

const projectGroup = `
	FROM projects p
	LEFT JOIN project_members m ON m.project_id = p.id
	%s
	GROUP BY p.id`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Status, &p.LeadID,
		&p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
		&p.MemberCount,
	)
	return p, err
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (name, description, status, lead_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.Name, p.Description, p.Status, p.LeadID, p.StartDate, p.EndDate,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns +
		fmt.Sprintf(projectGroup, "WHERE p.id = $1 AND p.deleted_at IS NULL")

	p, err := scanProject(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}

	return p, nil
}

// List implements project.ProjectRepository.
func (r *projectRepositoryImpl) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns +
		fmt.Sprintf(projectGroup, "WHERE p.deleted_at IS NULL") + `
		ORDER BY p.created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// Update implements project.ProjectRepository.
func (r *projectRepositoryImpl) Update(ctx context.Context, p project.Project) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET name = $1, description = $2, status = $3, lead_id = $4,
			start_date = $5, end_date = $6, updated_at = NOW()
		WHERE id = $7 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query,
		p.Name, p.Description, p.Status, p.LeadID, p.StartDate, p.EndDate, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

// Delete implements project.ProjectRepository.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

type projectMemberRepositoryImpl struct {
	db *database.DB
}

func NewProjectMemberRepository(db *database.DB) project.MemberRepository {
	return &projectMemberRepositoryImpl{db: db}
}

// Add implements project.MemberRepository.
func (r *projectMemberRepositoryImpl) Add(ctx context.Context, member project.Member) (project.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO project_members (project_id, employee_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (project_id, employee_id) DO NOTHING
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, member.ProjectID, member.EmployeeID, member.Role).
		Scan(&member.ID, &member.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Member{}, project.ErrAlreadyMember
		}
		return project.Member{}, fmt.Errorf("failed to add project member: %w", err)
	}

	return member, nil
}

// Remove implements project.MemberRepository.
func (r *projectMemberRepositoryImpl) Remove(ctx context.Context, projectID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM project_members WHERE project_id = $1 AND employee_id = $2`

	tag, err := q.Exec(ctx, query, projectID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to remove project member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrMemberNotFound
	}

	return nil
}

// ListByProject implements project.MemberRepository.
func (r *projectMemberRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]project.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.project_id, m.employee_id, m.role, m.created_at,
			   e.full_name AS employee_name
		FROM project_members m
		LEFT JOIN employees e ON e.id = m.employee_id
		WHERE m.project_id = $1
		ORDER BY m.created_at ASC
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project members: %w", err)
	}
	defer rows.Close()

	var members []project.Member
	for rows.Next() {
		var member project.Member
		err := rows.Scan(
			&member.ID, &member.ProjectID, &member.EmployeeID, &member.Role, &member.CreatedAt,
			&member.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project member: %w", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}
