package store

import (
	"errors"

	"learnhub/models"

	"gorm.io/gorm"
)

// GormStore implements Store on a GORM connection. The connection must be
// opened with TranslateError so unique violations surface as
// gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// Users

func (s *GormStore) GetUser(id uint) (*models.User, error) {
	var user models.User
	err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ? AND is_deleted = ?", username, false).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ? AND is_deleted = ?", email, false).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CreateUser(user *models.User) error {
	return translate(s.db.Create(user).Error)
}

func (s *GormStore) UpdateUser(user *models.User) error {
	return translate(s.db.Save(user).Error)
}

func (s *GormStore) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Where("is_deleted = ?", false).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Courses

func (s *GormStore) GetCourse(id uint) (*models.Course, error) {
	var course models.Course
	err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *GormStore) ListCourses() ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Where("is_deleted = ?", false).Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *GormStore) InsertCourse(course *models.Course) error {
	return translate(s.db.Create(course).Error)
}

func (s *GormStore) UpdateCourse(course *models.Course) error {
	return translate(s.db.Save(course).Error)
}

// DeleteCourse soft deletes so existing enrollments keep a valid reference.
func (s *GormStore) DeleteCourse(id uint) error {
	return s.db.Model(&models.Course{}).Where("id = ?", id).Update("is_deleted", true).Error
}

// Categories

func (s *GormStore) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormStore) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("is_deleted = ?", false).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *GormStore) InsertCategory(category *models.Category) error {
	return translate(s.db.Create(category).Error)
}

// Enrollments

func (s *GormStore) GetEnrollment(id uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *GormStore) ListEnrollments() ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("is_deleted = ?", false).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *GormStore) ListEnrollmentsByUser(userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *GormStore) ListEnrollmentsByCourse(courseID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *GormStore) FindEnrollment(userID, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *GormStore) InsertEnrollment(enrollment *models.Enrollment) error {
	return translate(s.db.Create(enrollment).Error)
}

func (s *GormStore) UpdateEnrollmentStatus(id uint, status string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	enrollment.Status = status
	if err := s.db.Save(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}
