package repository

import (
	"errors"

	"clinic-booking-service/internal/domain/entity"
	domainRepo "clinic-booking-service/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int64) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Specialties").Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByLicenseNumber(db *gorm.DB, licenseNumber string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("license_number = ?", licenseNumber).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.Doctor, int64, error) {
	var doctors []entity.Doctor
	var total int64

	if err := db.Model(&entity.Doctor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Specialties").
		Order("full_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Save(doctor).Error
}

func (r *doctorRepository) Delete(db *gorm.DB, id int64) error {
	return db.Delete(&entity.Doctor{}, id).Error
}

func (r *doctorRepository) AttachSpecialty(db *gorm.DB, doctorID, specialtyID int64) error {
	return db.Create(&entity.DoctorSpecialty{
		DoctorID:    doctorID,
		SpecialtyID: specialtyID,
	}).Error
}

// DetachSpecialty removes a single junction row.
// Returns affected rows: 0 means the pair did not exist.
func (r *doctorRepository) DetachSpecialty(db *gorm.DB, doctorID, specialtyID int64) (int64, error) {
	result := db.Where("doctor_id = ? AND specialty_id = ?", doctorID, specialtyID).
		Delete(&entity.DoctorSpecialty{})
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) FindSpecialties(db *gorm.DB, doctorID int64) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	err := db.Joins("JOIN doctor_specialties ds ON ds.specialty_id = specialties.id").
		Where("ds.doctor_id = ?", doctorID).
		Order("specialties.name ASC").
		Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}
