package user

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listUsersQuery = `
		SELECT "userId", "fullName", email, password, "imagePath"
		FROM users
		ORDER BY email
	`
	getUserByEmailQuery = `
		SELECT "userId", "fullName", email, password, "imagePath"
		FROM users
		WHERE email = $1
	`
	insertUserQuery = `
		INSERT INTO users ("userId", "fullName", email, password)
		VALUES ($1, $2, $3, $4)
	`
	updateUserQuery = `
		UPDATE users
		SET "fullName" = COALESCE($2, "fullName"),
			password = COALESCE($3, password),
			"imagePath" = COALESCE($4, "imagePath")
		WHERE email = $1
	`
	deleteUserQuery = `DELETE FROM users WHERE email = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]User, error) {
	rows, err := r.db.Query(listUsersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	row := r.db.QueryRow(getUserByEmailQuery, email)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return user, nil
}

func (r *PostgresRepository) Create(user User) (User, error) {
	_, err := r.db.Exec(insertUserQuery, user.ID, user.FullName, user.Email, user.Password)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}

	return user, nil
}

func (r *PostgresRepository) Update(email string, fields UpdateFields) (User, error) {
	result, err := r.db.Exec(updateUserQuery, email, fields.FullName, fields.Password, fields.ImagePath)
	if err != nil {
		return User{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if affected == 0 {
		return User{}, ErrNotFound
	}

	return r.GetByEmail(email)
}

func (r *PostgresRepository) Delete(email string) error {
	result, err := r.db.Exec(deleteUserQuery, email)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (code 23505), raised when a concurrent create wins the race on
// the email index.
func isUniqueViolation(err error) bool {
	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		return pge.Code == "23505"
	}
	return false
}

func scanUser(scanner rowScanner) (User, error) {
	user := User{}
	var imagePath sql.NullString

	if err := scanner.Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.Password,
		&imagePath,
	); err != nil {
		return User{}, err
	}

	if imagePath.Valid {
		user.ImagePath = &imagePath.String
	}

	return user, nil
}
