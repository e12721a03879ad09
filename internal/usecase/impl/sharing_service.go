package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"kidsactivity/config"
	deliverycontext "kidsactivity/internal/delivery/context"
	"kidsactivity/internal/domain/entity"
	domainerrors "kidsactivity/internal/domain/errors"
	"kidsactivity/internal/domain/repository"
	"kidsactivity/internal/domain/service"
	"kidsactivity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultInvitationTTL = 7 * 24 * time.Hour

// sharingService implements the SharingUsecase interface.
type sharingService struct {
	txManager      repository.TransactionManager
	invitationRepo repository.InvitationRepository
	childRepo      repository.ChildRepository
	userRepo       repository.UserRepository
	qrService      service.QRCodeService
	mailer         service.Mailer
	invitationTTL  time.Duration
	maxChildren    int
	logger         *slog.Logger
}

// SharingServiceParams holds dependencies for sharingService, injected by Fx.
type SharingServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	InvitationRepo repository.InvitationRepository
	ChildRepo      repository.ChildRepository
	UserRepo       repository.UserRepository
	QRService      service.QRCodeService
	Mailer         service.Mailer
	Config         *config.Config
	Logger         *slog.Logger
}

// NewSharingService is the constructor for sharingService. It receives all dependencies as interfaces.
func NewSharingService(params SharingServiceParams) usecase.SharingUsecase {
	invitationTTL := defaultInvitationTTL
	maxChildren := 0
	if params.Config != nil && params.Config.Sharing != nil {
		if params.Config.Sharing.InvitationTTL > 0 {
			invitationTTL = params.Config.Sharing.InvitationTTL
		}
		maxChildren = params.Config.Sharing.MaxChildrenPerInvitation
	}

	return &sharingService{
		txManager:      params.TxManager,
		invitationRepo: params.InvitationRepo,
		childRepo:      params.ChildRepo,
		userRepo:       params.UserRepo,
		qrService:      params.QRService,
		mailer:         params.Mailer,
		invitationTTL:  invitationTTL,
		maxChildren:    maxChildren,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sharingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateInvitation issues an invitation scoped to the inviter's own children
// and mails the accept link to the invitee.
func (srv *sharingService) CreateInvitation(ctx context.Context, input *usecase.CreateInvitationInput) (*entity.Invitation, error) {
	if len(input.Children) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invitation must share at least one child")
	}
	if srv.maxChildren > 0 && len(input.Children) > srv.maxChildren {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invitation shares too many children")
	}

	inviter, err := srv.userRepo.FindUserByID(ctx, input.InviterID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load inviter")
	}

	inviteeEmail := strings.ToLower(strings.TrimSpace(input.InviteeEmail))
	if inviteeEmail == strings.ToLower(inviter.Email) {
		return nil, errors.Wrap(domainerrors.ErrSelfInvitation, "create invitation failed")
	}

	if err := srv.verifyChildOwnership(ctx, input.InviterID, input.Children); err != nil {
		return nil, err
	}

	if err := srv.checkPendingDuplicate(ctx, input.InviterID, inviteeEmail); err != nil {
		return nil, err
	}

	token, err := generateInvitationToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invitation token")
	}

	invitation := &entity.Invitation{
		InviterID:    input.InviterID,
		InviteeEmail: inviteeEmail,
		Token:        token,
		Message:      input.Message,
		Status:       entity.InvitationPending,
		ExpiresAt:    time.Now().Add(srv.invitationTTL),
	}
	for _, share := range input.Children {
		invitation.Children = append(invitation.Children, &entity.SharedChildRule{
			ChildID:              share.ChildID,
			CanViewRegistrations: share.CanViewRegistrations,
			CanViewNotes:         share.CanViewNotes,
		})
	}

	if err := srv.invitationRepo.CreateInvitation(ctx, invitation); err != nil {
		srv.log(ctx).Error("Failed to create invitation", slog.Any("inviterID", input.InviterID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create invitation")
	}

	// Mail delivery is best-effort: the invitation already exists and can be
	// accepted through the QR code even if the message never arrives.
	mail := &service.InvitationMail{
		To:          inviteeEmail,
		InviterName: inviter.Name,
		Message:     input.Message,
		AcceptToken: token,
	}
	if err := srv.mailer.SendInvitation(ctx, mail); err != nil {
		srv.log(ctx).Warn("Failed to send invitation mail", slog.Any("invitationID", invitation.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Invitation created", slog.Any("inviterID", input.InviterID), slog.Any("invitationID", invitation.ID))

	return invitation, nil
}

// verifyChildOwnership checks that every shared child exists and belongs to
// the inviter.
func (srv *sharingService) verifyChildOwnership(ctx context.Context, inviterID uuid.UUID, shares []*usecase.ChildShareInput) error {
	ids := make([]uuid.UUID, 0, len(shares))
	for _, share := range shares {
		ids = append(ids, share.ChildID)
	}

	children, err := srv.childRepo.FindChildrenByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to load shared children")
	}

	owned := make(map[uuid.UUID]bool, len(children))
	for _, child := range children {
		if child.UserID == inviterID {
			owned[child.ID] = true
		}
	}
	for _, id := range ids {
		if !owned[id] {
			return errors.Wrap(domainerrors.ErrChildNotFound, "shared child does not belong to inviter")
		}
	}

	return nil
}

// checkPendingDuplicate rejects a second live invitation to the same email.
func (srv *sharingService) checkPendingDuplicate(ctx context.Context, inviterID uuid.UUID, inviteeEmail string) error {
	sent, err := srv.invitationRepo.FindInvitationsByInviter(ctx, inviterID)
	if err != nil {
		return errors.Wrap(err, "failed to check existing invitations")
	}

	now := time.Now()
	for _, invitation := range sent {
		if invitation.InviteeEmail == inviteeEmail &&
			invitation.Status == entity.InvitationPending &&
			!invitation.IsExpired(now) {
			return errors.Wrap(domainerrors.ErrInvitationExists, "create invitation failed")
		}
	}

	return nil
}

// ListSentInvitations returns the invitations the caller has issued.
func (srv *sharingService) ListSentInvitations(ctx context.Context, inviterID uuid.UUID) ([]*entity.Invitation, error) {
	invitations, err := srv.invitationRepo.FindInvitationsByInviter(ctx, inviterID)
	if err != nil {
		srv.log(ctx).Error("Failed to list sent invitations", slog.Any("inviterID", inviterID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list sent invitations")
	}

	return invitations, nil
}

// ListReceivedInvitations returns the invitations addressed to the caller.
func (srv *sharingService) ListReceivedInvitations(ctx context.Context, inviteeID uuid.UUID) ([]*entity.Invitation, error) {
	invitee, err := srv.userRepo.FindUserByID(ctx, inviteeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load invitee")
	}

	invitations, err := srv.invitationRepo.FindInvitationsForInvitee(ctx, inviteeID, invitee.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to list received invitations", slog.Any("inviteeID", inviteeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list received invitations")
	}

	return invitations, nil
}

// AcceptInvitation binds a pending invitation to the accepting account. The
// status transition is guarded on the pending state at the storage layer, so
// of two racing transitions (a second accept, a revoke) only the first to
// commit wins; the loser surfaces ErrInvitationNotPending.
func (srv *sharingService) AcceptInvitation(ctx context.Context, inviteeID uuid.UUID, token string) (*entity.Invitation, error) {
	var accepted *entity.Invitation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		invitationRepo := repoFactory.NewInvitationRepository()
		userRepo := repoFactory.NewUserRepository()

		invitation, err := invitationRepo.FindInvitationByToken(ctx, token)
		if err != nil {
			if errors.Is(err, repository.ErrInvitationNotFound) {
				return errors.Wrap(domainerrors.ErrInvitationNotFound, "accept invitation failed")
			}

			return errors.Wrap(err, "failed to find invitation by token")
		}

		if invitation.Status != entity.InvitationPending {
			return errors.Wrap(domainerrors.ErrInvitationNotPending, "accept invitation failed")
		}

		now := time.Now()
		if invitation.IsExpired(now) {
			// Record the terminal state while we are here; the invitee still
			// gets the expiry error.
			if updateErr := invitationRepo.UpdateInvitationStatus(ctx, invitation.ID, entity.InvitationPending, entity.InvitationExpired, nil, nil); updateErr != nil && !errors.Is(updateErr, repository.ErrInvitationStatusConflict) {
				return errors.Wrap(updateErr, "failed to expire invitation")
			}

			return errors.Wrap(domainerrors.ErrInvitationExpired, "accept invitation failed")
		}

		invitee, err := userRepo.FindUserByID(ctx, inviteeID)
		if err != nil {
			return errors.Wrap(err, "failed to load invitee")
		}
		if !strings.EqualFold(invitee.Email, invitation.InviteeEmail) {
			return errors.Wrap(domainerrors.ErrInvitationWrongInvitee, "accept invitation failed")
		}

		if err := invitationRepo.UpdateInvitationStatus(ctx, invitation.ID, entity.InvitationPending, entity.InvitationAccepted, &inviteeID, &now); err != nil {
			if errors.Is(err, repository.ErrInvitationStatusConflict) {
				// A concurrent accept, revoke or expiry moved the row after
				// our read; the invitation is no longer acceptable.
				return errors.Wrap(domainerrors.ErrInvitationNotPending, "accept invitation failed")
			}

			return errors.Wrap(err, "failed to accept invitation")
		}

		invitation.Status = entity.InvitationAccepted
		invitation.InviteeID = &inviteeID
		invitation.AcceptedAt = &now
		accepted = invitation

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to accept invitation", slog.Any("inviteeID", inviteeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to accept invitation")
	}

	srv.log(ctx).Info("Invitation accepted", slog.Any("invitationID", accepted.ID), slog.Any("inviteeID", inviteeID))

	return accepted, nil
}

// DeclineInvitation rejects a pending invitation addressed to the caller.
func (srv *sharingService) DeclineInvitation(ctx context.Context, inviteeID uuid.UUID, invitationID uuid.UUID) error {
	invitation, err := srv.invitationRepo.FindInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, repository.ErrInvitationNotFound) {
			return errors.Wrap(domainerrors.ErrInvitationNotFound, "decline invitation failed")
		}

		return errors.Wrap(err, "failed to find invitation")
	}

	invitee, err := srv.userRepo.FindUserByID(ctx, inviteeID)
	if err != nil {
		return errors.Wrap(err, "failed to load invitee")
	}
	if !strings.EqualFold(invitee.Email, invitation.InviteeEmail) {
		return errors.Wrap(domainerrors.ErrInvitationWrongInvitee, "decline invitation failed")
	}

	if invitation.Status != entity.InvitationPending {
		return errors.Wrap(domainerrors.ErrInvitationNotPending, "decline invitation failed")
	}

	if err := srv.invitationRepo.UpdateInvitationStatus(ctx, invitationID, entity.InvitationPending, entity.InvitationDeclined, nil, nil); err != nil {
		if errors.Is(err, repository.ErrInvitationStatusConflict) {
			return errors.Wrap(domainerrors.ErrInvitationNotPending, "decline invitation failed")
		}

		srv.log(ctx).Error("Failed to decline invitation", slog.Any("invitationID", invitationID), slog.Any("error", err))

		return errors.Wrap(err, "failed to decline invitation")
	}

	return nil
}

// RevokeInvitation withdraws an invitation the caller issued. Accepted
// invitations can be revoked too; that is how a parent cuts off access.
func (srv *sharingService) RevokeInvitation(ctx context.Context, inviterID uuid.UUID, invitationID uuid.UUID) error {
	invitation, err := srv.invitationRepo.FindInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, repository.ErrInvitationNotFound) {
			return errors.Wrap(domainerrors.ErrInvitationNotFound, "revoke invitation failed")
		}

		return errors.Wrap(err, "failed to find invitation")
	}

	if invitation.InviterID != inviterID {
		return errors.Wrap(domainerrors.ErrInvitationNotFound, "invitation does not belong to inviter")
	}
	if invitation.Status == entity.InvitationRevoked {
		return errors.Wrap(domainerrors.ErrInvitationNotPending, "invitation already revoked")
	}

	if err := srv.invitationRepo.UpdateInvitationStatus(ctx, invitationID, invitation.Status, entity.InvitationRevoked, nil, nil); err != nil {
		if errors.Is(err, repository.ErrInvitationStatusConflict) {
			return errors.Wrap(domainerrors.ErrInvitationNotPending, "revoke invitation failed")
		}

		srv.log(ctx).Error("Failed to revoke invitation", slog.Any("invitationID", invitationID), slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke invitation")
	}

	srv.log(ctx).Info("Invitation revoked", slog.Any("invitationID", invitationID), slog.Any("inviterID", inviterID))

	return nil
}

// InvitationQR renders the accept token of the caller's invitation as a PNG
// QR code for in-person sharing.
func (srv *sharingService) InvitationQR(ctx context.Context, inviterID uuid.UUID, invitationID uuid.UUID) ([]byte, error) {
	invitation, err := srv.invitationRepo.FindInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, repository.ErrInvitationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvitationNotFound, "invitation qr failed")
		}

		return nil, errors.Wrap(err, "failed to find invitation")
	}

	if invitation.InviterID != inviterID {
		return nil, errors.Wrap(domainerrors.ErrInvitationNotFound, "invitation does not belong to inviter")
	}
	if invitation.Status != entity.InvitationPending {
		return nil, errors.Wrap(domainerrors.ErrInvitationNotPending, "invitation qr failed")
	}

	png, err := srv.qrService.GenerateInvitationQR(invitation.Token)
	if err != nil {
		srv.log(ctx).Error("Failed to render invitation QR", slog.Any("invitationID", invitationID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render invitation QR")
	}

	return png, nil
}

// ListSharedChildren returns the children other parents have shared with the
// caller, access flags applied. Flags from overlapping grants merge
// permissively.
func (srv *sharingService) ListSharedChildren(ctx context.Context, inviteeID uuid.UUID) ([]*entity.SharedChild, error) {
	invitations, err := srv.invitationRepo.FindAcceptedInvitationsForInvitee(ctx, inviteeID, time.Now())
	if err != nil {
		srv.log(ctx).Error("Failed to load accepted invitations", slog.Any("inviteeID", inviteeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load accepted invitations")
	}

	grants := make(map[uuid.UUID]*entity.SharedChildRule)
	owners := make(map[uuid.UUID]uuid.UUID) // childID -> inviterID
	order := make([]uuid.UUID, 0)
	for _, invitation := range invitations {
		for _, rule := range invitation.Children {
			grant, ok := grants[rule.ChildID]
			if !ok {
				grant = &entity.SharedChildRule{ChildID: rule.ChildID}
				grants[rule.ChildID] = grant
				owners[rule.ChildID] = invitation.InviterID
				order = append(order, rule.ChildID)
			}
			grant.CanViewRegistrations = grant.CanViewRegistrations || rule.CanViewRegistrations
			grant.CanViewNotes = grant.CanViewNotes || rule.CanViewNotes
		}
	}

	if len(order) == 0 {
		return []*entity.SharedChild{}, nil
	}

	children, err := srv.childRepo.FindChildrenByIDs(ctx, order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shared children")
	}
	childByID := make(map[uuid.UUID]*entity.Child, len(children))
	for _, child := range children {
		childByID[child.ID] = child
	}

	ownerNames := make(map[uuid.UUID]string)

	shared := make([]*entity.SharedChild, 0, len(order))
	for _, childID := range order {
		child, ok := childByID[childID]
		if !ok {
			// The child was deleted after the grant; skip it.
			continue
		}

		grant := grants[childID]
		entry := &entity.SharedChild{
			Child:                child,
			CanViewRegistrations: grant.CanViewRegistrations,
			CanViewNotes:         grant.CanViewNotes,
		}

		ownerID := owners[childID]
		name, cached := ownerNames[ownerID]
		if !cached {
			owner, err := srv.userRepo.FindUserByID(ctx, ownerID)
			if err == nil {
				name = owner.Name
			}
			ownerNames[ownerID] = name
		}
		entry.OwnerName = name

		if grant.CanViewRegistrations {
			links, err := srv.childRepo.FindChildActivities(ctx, childID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to load shared child activities")
			}
			if !grant.CanViewNotes {
				for _, link := range links {
					link.Notes = ""
				}
			}
			entry.Activities = links
		}

		shared = append(shared, entry)
	}

	return shared, nil
}

// generateInvitationToken produces the opaque accept secret.
func generateInvitationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}
