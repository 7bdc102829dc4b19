package service

import (
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes trail entries inside the caller's transaction so the
// entry commits or rolls back together with the mutation it describes.
type AuditService interface {
	Record(tx *gorm.DB, actorID *uint, action string, metadata entity.JSON) error
	RecordChange(tx *gorm.DB, actorID *uint, action string, oldValue, newValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(tx *gorm.DB, actorID *uint, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		RequestID: uuid.New(),
		ActorID:   actorID,
		Action:    action,
		Metadata:  metadata,
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

func (s *auditService) RecordChange(tx *gorm.DB, actorID *uint, action string, oldValue, newValue interface{}) error {
	metadata := entity.JSON{
		"old_value": oldValue,
		"new_value": newValue,
	}
	return s.Record(tx, actorID, action, metadata)
}
