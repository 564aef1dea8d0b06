package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/campus-hq/college-admin-api/internal/models"
)

// UserRepository handles persistence for users and their role profiles. A
// user and its profile are created and deleted as one unit.
type UserRepository interface {
	CreateWithProfile(ctx context.Context, user *models.User) error
	SaveWithProfile(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context, role string) ([]models.User, error)
	Delete(ctx context.Context, id uint) error
	UpdateProfilePhoto(ctx context.Context, id uint, url string) error
	AdminProfileByUserID(ctx context.Context, userID uint) (models.AdminProfile, error)
	StaffProfileByUserID(ctx context.Context, userID uint) (models.StaffProfile, error)
	StudentProfileByUserID(ctx context.Context, userID uint) (models.StudentProfile, error)
	StaffProfileByID(ctx context.Context, id uint) (models.StaffProfile, error)
	StudentProfileByID(ctx context.Context, id uint) (models.StudentProfile, error)
	SaveStaffProfile(ctx context.Context, profile *models.StaffProfile) error
	SaveStudentProfile(ctx context.Context, profile *models.StudentProfile) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository constructs a repository backed by GORM.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithProfile persists the user and provisions the matching role
// profile in a single transaction, so the profile relation is populated
// before the user row becomes visible.
func (r *userRepository) CreateWithProfile(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		switch user.Role {
		case models.RoleAdmin:
			return tx.Create(&models.AdminProfile{UserID: user.ID}).Error
		case models.RoleStaff:
			return tx.Create(&models.StaffProfile{UserID: user.ID, Phone: user.Phone, NationalID: user.NationalID}).Error
		case models.RoleStudent:
			return tx.Create(&models.StudentProfile{UserID: user.ID, Phone: user.Phone, NationalID: user.NationalID, DateOfBirth: user.DateOfBirth}).Error
		default:
			return fmt.Errorf("unknown role %q", user.Role)
		}
	})
}

// SaveWithProfile saves the user and re-saves the associated role profile,
// bumping its updated timestamp.
func (r *userRepository) SaveWithProfile(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}

		switch user.Role {
		case models.RoleAdmin:
			var profile models.AdminProfile
			if err := tx.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
				return err
			}
			return tx.Save(&profile).Error
		case models.RoleStaff:
			var profile models.StaffProfile
			if err := tx.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
				return err
			}
			return tx.Save(&profile).Error
		case models.RoleStudent:
			var profile models.StudentProfile
			if err := tx.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
				return err
			}
			return tx.Save(&profile).Error
		default:
			return fmt.Errorf("unknown role %q", user.Role)
		}
	})
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *userRepository) List(ctx context.Context, role string) ([]models.User, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) UpdateProfilePhoto(ctx context.Context, id uint, url string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("profile_photo_url", url).Error
}

func (r *userRepository) AdminProfileByUserID(ctx context.Context, userID uint) (models.AdminProfile, error) {
	var profile models.AdminProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return models.AdminProfile{}, err
	}
	return profile, nil
}

func (r *userRepository) StaffProfileByUserID(ctx context.Context, userID uint) (models.StaffProfile, error) {
	var profile models.StaffProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return models.StaffProfile{}, err
	}
	return profile, nil
}

func (r *userRepository) StudentProfileByUserID(ctx context.Context, userID uint) (models.StudentProfile, error) {
	var profile models.StudentProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return models.StudentProfile{}, err
	}
	return profile, nil
}

func (r *userRepository) StaffProfileByID(ctx context.Context, id uint) (models.StaffProfile, error) {
	var profile models.StaffProfile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		return models.StaffProfile{}, err
	}
	return profile, nil
}

func (r *userRepository) StudentProfileByID(ctx context.Context, id uint) (models.StudentProfile, error) {
	var profile models.StudentProfile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		return models.StudentProfile{}, err
	}
	return profile, nil
}

func (r *userRepository) SaveStaffProfile(ctx context.Context, profile *models.StaffProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *userRepository) SaveStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
