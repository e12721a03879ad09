package postgres

import (
	"context"
	"strings"
	"time"

	"kidsactivity/internal/domain/entity"
	domainerrors "kidsactivity/internal/domain/errors"
	"kidsactivity/internal/domain/repository"
	"kidsactivity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// invitationRepository implements the domain.InvitationRepository interface using GORM.
type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository is the constructor for invitationRepository.
func NewInvitationRepository(db *gorm.DB) repository.InvitationRepository {
	return &invitationRepository{db: db}
}

// CreateInvitation persists a new invitation together with its per-child
// rules. GORM inserts the Children association rows in the same statement
// batch.
func (repo *invitationRepository) CreateInvitation(ctx context.Context, invitation *entity.Invitation) error {
	invitationM := fromInvitationDomain(invitation)
	invitationM.InviteeEmail = strings.ToLower(invitationM.InviteeEmail)

	if err := repo.db.WithContext(ctx).Create(invitationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateInvitation
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrChildNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invitation")
	}

	invitation.ID = invitationM.ID
	invitation.InviteeEmail = invitationM.InviteeEmail
	invitation.CreatedAt = invitationM.CreatedAt
	invitation.UpdatedAt = invitationM.UpdatedAt
	for _, rule := range invitation.Children {
		rule.InvitationID = invitationM.ID
	}

	return nil
}

// FindInvitationByID retrieves an invitation with its child rules.
func (repo *invitationRepository) FindInvitationByID(ctx context.Context, id uuid.UUID) (*entity.Invitation, error) {
	var invitationM model.InvitationModel

	err := repo.db.WithContext(ctx).
		Preload("Children").
		Where("id = ?", id).
		First(&invitationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvitationNotFound
		}

		return nil, errors.Wrap(err, "failed to find invitation by id")
	}

	return toInvitationDomain(&invitationM), nil
}

// FindInvitationByToken retrieves an invitation by its accept token.
func (repo *invitationRepository) FindInvitationByToken(ctx context.Context, token string) (*entity.Invitation, error) {
	var invitationM model.InvitationModel

	err := repo.db.WithContext(ctx).
		Preload("Children").
		Where("token = ?", token).
		First(&invitationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvitationNotFound
		}

		return nil, errors.Wrap(err, "failed to find invitation by token")
	}

	return toInvitationDomain(&invitationM), nil
}

// FindInvitationsByInviter retrieves invitations sent by a user, newest first.
func (repo *invitationRepository) FindInvitationsByInviter(ctx context.Context, inviterID uuid.UUID) ([]*entity.Invitation, error) {
	var models []*model.InvitationModel

	err := repo.db.WithContext(ctx).
		Preload("Children").
		Where("inviter_id = ?", inviterID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find invitations by inviter")
	}

	return toInvitationDomainList(models), nil
}

// FindInvitationsForInvitee retrieves invitations addressed to a user,
// matched by bound invitee ID or by email, newest first.
func (repo *invitationRepository) FindInvitationsForInvitee(ctx context.Context, inviteeID uuid.UUID, email string) ([]*entity.Invitation, error) {
	var models []*model.InvitationModel

	err := repo.db.WithContext(ctx).
		Preload("Children").
		Where("invitee_id = ? OR invitee_email = ?", inviteeID, strings.ToLower(email)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find invitations for invitee")
	}

	return toInvitationDomainList(models), nil
}

// FindAcceptedInvitationsForInvitee retrieves accepted, unexpired invitations
// granting the invitee access at the given instant.
func (repo *invitationRepository) FindAcceptedInvitationsForInvitee(ctx context.Context, inviteeID uuid.UUID, now time.Time) ([]*entity.Invitation, error) {
	var models []*model.InvitationModel

	err := repo.db.WithContext(ctx).
		Preload("Children").
		Where("invitee_id = ? AND status = ? AND expires_at > ?", inviteeID, string(entity.InvitationAccepted), now).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find accepted invitations")
	}

	return toInvitationDomainList(models), nil
}

// UpdateInvitationStatus transitions an invitation; acceptedAt and inviteeID
// are recorded when the transition is an acceptance. The status guard in the
// WHERE clause makes the transition atomic: a racing transition that commits
// first leaves this update with zero rows.
func (repo *invitationRepository) UpdateInvitationStatus(ctx context.Context, id uuid.UUID, from, to entity.InvitationStatus, inviteeID *uuid.UUID, acceptedAt *time.Time) error {
	updates := map[string]any{
		"status": string(to),
	}
	if inviteeID != nil {
		updates["invitee_id"] = *inviteeID
	}
	if acceptedAt != nil {
		updates["accepted_at"] = *acceptedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.InvitationModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update invitation status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInvitationStatusConflict
	}

	return nil
}

// --- Mapper Functions ---

// toInvitationDomain converts a GORM InvitationModel to a domain Invitation entity.
func toInvitationDomain(data *model.InvitationModel) *entity.Invitation {
	if data == nil {
		return nil
	}

	rules := make([]*entity.SharedChildRule, 0, len(data.Children))
	for _, ruleM := range data.Children {
		rules = append(rules, &entity.SharedChildRule{
			InvitationID:         ruleM.InvitationID,
			ChildID:              ruleM.ChildID,
			CanViewRegistrations: ruleM.CanViewRegistrations,
			CanViewNotes:         ruleM.CanViewNotes,
		})
	}

	return &entity.Invitation{
		ID:           data.ID,
		InviterID:    data.InviterID,
		InviteeEmail: data.InviteeEmail,
		InviteeID:    data.InviteeID,
		Token:        data.Token,
		Message:      data.Message,
		Status:       entity.InvitationStatus(data.Status),
		ExpiresAt:    data.ExpiresAt,
		AcceptedAt:   data.AcceptedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		Children:     rules,
	}
}

// toInvitationDomainList converts a slice of GORM models to domain entities.
func toInvitationDomainList(data []*model.InvitationModel) []*entity.Invitation {
	invitations := make([]*entity.Invitation, 0, len(data))
	for _, invitationM := range data {
		invitations = append(invitations, toInvitationDomain(invitationM))
	}

	return invitations
}

// fromInvitationDomain converts a domain Invitation entity to a GORM model.
func fromInvitationDomain(data *entity.Invitation) *model.InvitationModel {
	if data == nil {
		return nil
	}

	children := make([]*model.InvitationChildModel, 0, len(data.Children))
	for _, rule := range data.Children {
		children = append(children, &model.InvitationChildModel{
			InvitationID:         rule.InvitationID,
			ChildID:              rule.ChildID,
			CanViewRegistrations: rule.CanViewRegistrations,
			CanViewNotes:         rule.CanViewNotes,
		})
	}

	return &model.InvitationModel{
		ID:           data.ID,
		InviterID:    data.InviterID,
		InviteeEmail: data.InviteeEmail,
		InviteeID:    data.InviteeID,
		Token:        data.Token,
		Message:      data.Message,
		Status:       string(data.Status),
		ExpiresAt:    data.ExpiresAt,
		AcceptedAt:   data.AcceptedAt,
		Children:     children,
	}
}
