package doctor

import (
	"fmt"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
)

// DoctorService manages the doctor catalog (admin only).
type DoctorService interface {
	GetAllDoctors() ([]models.Doctor, error)
	CreateDoctor(doctor models.Doctor) (string, error)
	DeleteDoctor(id string) (int64, error)
}

// DefaultDoctorService implements DoctorService over the doctors collection.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) GetAllDoctors() ([]models.Doctor, error) {
	return s.Repo.GetAll()
}

func (s *DefaultDoctorService) CreateDoctor(doctor models.Doctor) (string, error) {
	id, err := s.Repo.Insert(&doctor)
	if err != nil {
		return "", fmt.Errorf("failed to create doctor: %w", err)
	}
	return id, nil
}

func (s *DefaultDoctorService) DeleteDoctor(id string) (int64, error) {
	return s.Repo.Delete(id)
}
