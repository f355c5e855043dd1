// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"maintenance_backend/internal/feature/auth/domain/entity"
	"maintenance_backend/internal/feature/auth/usecase"
)

// OperatorModel is the gorm model for the operators table.
type OperatorModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Password  string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OperatorModel) TableName() string {
	return "operators"
}

// operatorMySQL is the gorm implementation of OperatorRepository.
type operatorMySQL struct {
	db *gorm.DB
}

var _ usecase.OperatorRepository = (*operatorMySQL)(nil)

// NewOperatorMySQL creates a new operatorMySQL instance with the given
// gorm.DB connection.
func NewOperatorMySQL(db *gorm.DB) *operatorMySQL {
	return &operatorMySQL{db: db}
}

// Create persists a new operator. It returns usecase.ErrEmailAlreadyExists
// when the email is already registered.
func (r *operatorMySQL) Create(ctx context.Context, op *entity.Operator) error {
	m := OperatorModel{Email: op.Email, Password: op.Password}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	op.ID = m.ID
	op.CreatedAt = m.CreatedAt
	op.UpdatedAt = m.UpdatedAt
	return nil
}

// FindByEmail retrieves an operator by email. It returns
// usecase.ErrOperatorNotFound when no operator exists.
func (r *operatorMySQL) FindByEmail(ctx context.Context, email string) (*entity.Operator, error) {
	var m OperatorModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrOperatorNotFound
		}
		return nil, err
	}
	return &entity.Operator{
		ID:        m.ID,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// isDuplicateKey recognizes unique constraint violations for both the MySQL
// driver (error 1062) and SQLite, which the tests run on.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
