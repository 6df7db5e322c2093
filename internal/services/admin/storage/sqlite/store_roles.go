package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chekout/admin/internal/commerce/role"
	"github.com/chekout/admin/internal/services/admin/storage"
)

// CreateRole persists a new role with its permission grants.
func (s *Store) CreateRole(ctx context.Context, r storage.Role) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("role id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("role name is required")
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}

	permissions, err := encodePermissions(r.Permissions)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(ctx, `
		INSERT INTO roles (id, name, level, permissions_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Level, permissions, toMillis(r.CreatedAt), toMillis(r.UpdatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert role: %w", err)
	}
	s.notifyChange("roles")
	return nil
}

// GetRole loads one role by id.
func (s *Store) GetRole(ctx context.Context, roleID string) (storage.Role, error) {
	if err := ctx.Err(); err != nil {
		return storage.Role{}, err
	}
	if strings.TrimSpace(roleID) == "" {
		return storage.Role{}, fmt.Errorf("role id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
		SELECT id, name, level, permissions_json, created_at, updated_at
		FROM roles WHERE id = ?`, roleID)
	return scanRole(row)
}

// UpdateRole replaces a role's name, level, and permission grants.
func (s *Store) UpdateRole(ctx context.Context, r storage.Role) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("role id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("role name is required")
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = time.Now().UTC()
	}

	permissions, err := encodePermissions(r.Permissions)
	if err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(ctx, `
		UPDATE roles SET name = ?, level = ?, permissions_json = ?, updated_at = ?
		WHERE id = ?`,
		r.Name, r.Level, permissions, toMillis(r.UpdatedAt), r.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("update role: %w", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}
	s.notifyChange("roles")
	return nil
}

// DeleteRole removes a role. Callers check assignments first; the RESTRICT
// foreign key is the backstop against racing assignments.
func (s *Store) DeleteRole(ctx context.Context, roleID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(roleID) == "" {
		return fmt.Errorf("role id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM roles WHERE id = ?`, roleID)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}
	s.notifyChange("roles")
	return nil
}

// ListRoles returns every role ordered by level, highest first.
func (s *Store) ListRoles(ctx context.Context) ([]storage.Role, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT id, name, level, permissions_json, created_at, updated_at
		FROM roles ORDER BY level DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	return collectRoles(rows)
}

// ListRolesForUser returns the roles assigned to one user.
func (s *Store) ListRolesForUser(ctx context.Context, userID string) ([]storage.Role, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user id is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT r.id, r.name, r.level, r.permissions_json, r.created_at, r.updated_at
		FROM roles r
		JOIN role_assignments ra ON ra.role_id = r.id
		WHERE ra.user_id = ?
		ORDER BY r.level DESC, r.name`, userID)
	if err != nil {
		return nil, fmt.Errorf("list roles for user: %w", err)
	}
	defer rows.Close()
	return collectRoles(rows)
}

// CountRoleAssignments returns how many admins currently hold the role.
func (s *Store) CountRoleAssignments(ctx context.Context, roleID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(roleID) == "" {
		return 0, fmt.Errorf("role id is required")
	}

	var count int
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM role_assignments WHERE role_id = ?`, roleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count role assignments: %w", err)
	}
	return count, nil
}

// AssignRole grants a role to a user. Assigning an already-held role is a
// no-op.
func (s *Store) AssignRole(ctx context.Context, userID, roleID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(roleID) == "" {
		return fmt.Errorf("role id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO role_assignments (user_id, role_id) VALUES (?, ?)
		ON CONFLICT(user_id, role_id) DO NOTHING`, userID, roleID)
	if err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	s.notifyChange("role_assignments")
	return nil
}

// RemoveRole revokes a role from a user.
func (s *Store) RemoveRole(ctx context.Context, userID, roleID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(roleID) == "" {
		return fmt.Errorf("role id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM role_assignments WHERE user_id = ? AND role_id = ?`, userID, roleID)
	if err != nil {
		return fmt.Errorf("remove role: %w", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}
	s.notifyChange("role_assignments")
	return nil
}

// RoleLevel returns the highest level among a user's roles, or zero for a
// user with no roles.
func (s *Store) RoleLevel(ctx context.Context, userID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(userID) == "" {
		return 0, fmt.Errorf("user id is required")
	}

	var level int
	err := s.sqlDB.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(r.level), 0)
		FROM roles r
		JOIN role_assignments ra ON ra.role_id = r.id
		WHERE ra.user_id = ?`, userID).Scan(&level)
	if err != nil {
		return 0, fmt.Errorf("role level: %w", err)
	}
	return level, nil
}

func collectRoles(rows *sql.Rows) ([]storage.Role, error) {
	var roles []storage.Role
	for rows.Next() {
		r, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("collect roles: %w", err)
	}
	return roles, nil
}

func scanRole(row rowScanner) (storage.Role, error) {
	var r storage.Role
	var permissions string
	var createdAt, updatedAt int64
	err := row.Scan(&r.ID, &r.Name, &r.Level, &permissions, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Role{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Role{}, fmt.Errorf("scan role: %w", err)
	}
	r.Permissions, err = decodePermissions(permissions)
	if err != nil {
		return storage.Role{}, err
	}
	r.CreatedAt = fromMillis(createdAt)
	r.UpdatedAt = fromMillis(updatedAt)
	return r, nil
}

func encodePermissions(permissions map[role.Resource]role.Access) (string, error) {
	if len(permissions) == 0 {
		return "{}", nil
	}
	raw := make(map[string]string, len(permissions))
	for resource, access := range permissions {
		raw[string(resource)] = string(access)
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("encode role permissions: %w", err)
	}
	return string(encoded), nil
}

func decodePermissions(encoded string) (map[role.Resource]role.Access, error) {
	if strings.TrimSpace(encoded) == "" {
		return map[role.Resource]role.Access{}, nil
	}
	raw := make(map[string]string)
	if err := json.Unmarshal([]byte(encoded), &raw); err != nil {
		return nil, fmt.Errorf("decode role permissions: %w", err)
	}
	permissions := make(map[role.Resource]role.Access, len(raw))
	for resource, access := range raw {
		permissions[role.Resource(resource)] = role.Access(access)
	}
	return permissions, nil
}
