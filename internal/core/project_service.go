package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webintake-backend-go/internal/db"
	"webintake-backend-go/internal/models"
)

// idRetryLimit bounds how often a colliding identifier is re-derived before
// the submission is rejected.
const idRetryLimit = 5

// ProjectServiceConfig carries the pricing and identifier policy knobs.
type ProjectServiceConfig struct {
	// AdvanceRate is the upfront share of the total cost, e.g. 0.4.
	AdvanceRate float64
	// IDPolicy selects IDPolicyName or IDPolicyRandom.
	IDPolicy string
}

// projectService implements the ProjectService interface.
type projectService struct {
	projectRepo db.ProjectRepository
	notifier    Notifier
	cfg         ProjectServiceConfig

	now func() time.Time
}

// NewProjectService creates a new ProjectService instance.
func NewProjectService(projectRepo db.ProjectRepository, notifier Notifier, cfg ProjectServiceConfig) ProjectService {
	if cfg.IDPolicy == "" {
		cfg.IDPolicy = IDPolicyName
	}
	return &projectService{
		projectRepo: projectRepo,
		notifier:    notifier,
		cfg:         cfg,
		now:         time.Now,
	}
}

func validComplexity(c string) bool {
	return c == models.ComplexitySimple || c == models.ComplexityMedium || c == models.ComplexityComplex
}

// Create validates the submission, computes the quote, assigns an identifier
// and persists the record. The notifier is triggered best-effort after the
// record is durable; notification failure never rolls it back.
func (s *projectService) Create(ctx context.Context, identity models.Identity, req models.CreateProjectRequest) (*models.Project, error) {
	if identity.IsAnonymous() {
		return nil, ErrUnauthenticated
	}

	var fields []string
	if req.WebsiteType == "" {
		fields = append(fields, "websiteType")
	}
	if req.Complexity == "" || !validComplexity(req.Complexity) {
		fields = append(fields, "complexity")
	}
	if req.WebsiteName == "" {
		fields = append(fields, "websiteName")
	}
	if req.Description == "" {
		fields = append(fields, "description")
	}
	if req.DeliveryOption == "" {
		fields = append(fields, "deliveryOption")
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields...)
	}

	// The edit surcharge only has meaning under the deterministic policy, where
	// resubmissions by the same requester share a name prefix.
	priorEdits := 0
	if s.cfg.IDPolicy == IDPolicyName {
		count, err := s.projectRepo.CountByIDPrefix(ctx, NamePrefix(identity.Name))
		if err != nil {
			return nil, fmt.Errorf("counting prior submissions: %w", err)
		}
		priorEdits = count
	}

	// This submission is number priorEdits+1 in its prefix sequence, and the
	// surcharge is priced on that position.
	quote := ComputeQuote(req.Complexity, req.WebsiteType, req.DeliveryOption, priorEdits+1, s.cfg.AdvanceRate)
	now := s.now().UTC()

	project := &models.Project{
		UserID:    identity.UserID,
		UserName:  identity.Name,
		UserEmail: identity.Email,
		UserPhone: identity.Phone,
		Username:  identity.Username,

		WebsiteType:    req.WebsiteType,
		Complexity:     req.Complexity,
		WebsiteName:    req.WebsiteName,
		Description:    req.Description,
		DeliveryOption: req.DeliveryOption,

		BaseCost:        quote.BaseCost,
		DeliveryCharges: quote.DeliveryCharges,
		EditCharges:     quote.EditCharges,
		TotalCost:       quote.TotalCost,
		AdvanceAmount:   quote.AdvanceAmount,
		FinalAmount:     quote.FinalAmount,
		EditCount:       priorEdits + 1,

		Status:        models.StatusPending,
		PaymentStatus: models.PaymentPending,

		CreatedAt:    now,
		DeliveryDate: now.AddDate(0, 0, quote.DeliveryDays).Format("2006-01-02"),
	}

	if err := s.persistWithFreshID(ctx, identity, project); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.ProjectSubmitted(project)
	}
	return project, nil
}

// persistWithFreshID derives an identifier and appends the record, re-deriving
// on collision so an existing record is never overwritten.
func (s *projectService) persistWithFreshID(ctx context.Context, identity models.Identity, project *models.Project) error {
	for attempt := 0; attempt < idRetryLimit; attempt++ {
		if s.cfg.IDPolicy == IDPolicyRandom {
			project.ID = RandomID()
		} else {
			// Same-second submissions produce the same timestamp suffix;
			// skewing the clock by the attempt number changes it.
			project.ID = NameBasedID(identity.Name, s.now().Add(time.Duration(attempt)*time.Second))
		}
		err := s.projectRepo.Create(ctx, project)
		if err == nil {
			return nil
		}
		if !errors.Is(err, db.ErrDuplicateID) {
			return fmt.Errorf("persisting project: %w", err)
		}
	}
	return ErrIdentifierConflict
}

// List returns all projects for an admin, the caller's own projects for a
// regular user, and refuses anonymous callers.
func (s *projectService) List(ctx context.Context, identity models.Identity) ([]*models.Project, error) {
	switch {
	case identity.IsAnonymous():
		return nil, ErrUnauthorized
	case identity.IsAdmin():
		return s.projectRepo.List(ctx)
	default:
		return s.projectRepo.ListByOwner(ctx, identity.UserID)
	}
}

// Get returns a single project. Regular users can only read their own records.
func (s *projectService) Get(ctx context.Context, identity models.Identity, id string) (*models.Project, error) {
	if identity.IsAnonymous() {
		return nil, ErrUnauthenticated
	}
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrProjectNotFound, id)
		}
		return nil, fmt.Errorf("getting project %q: %w", id, err)
	}
	if !identity.IsAdmin() && project.UserID != identity.UserID {
		return nil, ErrUnauthorized
	}
	return project, nil
}

// Update applies an admin patch. Only fields present on the record can be
// patched; unknown keys in the request body never reach the service because
// the patch type is an explicit allow-list.
func (s *projectService) Update(ctx context.Context, identity models.Identity, id string, patch models.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.requireAdminAndFetch(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		project.Status = *patch.Status
	}
	if patch.PaymentStatus != nil {
		project.PaymentStatus = *patch.PaymentStatus
	}
	if patch.AdvancePaid != nil {
		project.AdvancePaid = *patch.AdvancePaid
	}
	if patch.FullPaid != nil {
		project.FullPaid = *patch.FullPaid
	}
	if patch.BillGenerated != nil {
		project.BillGenerated = *patch.BillGenerated
	}
	if patch.WebsiteURL != nil {
		project.WebsiteURL = *patch.WebsiteURL
	}
	if patch.DeliveryDate != nil {
		project.DeliveryDate = *patch.DeliveryDate
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("updating project %q: %w", id, err)
	}
	return project, nil
}

// GenerateBill marks the bill as generated and records the delivery URL.
// Billing is orthogonal to the payment state machine and may happen at any point.
func (s *projectService) GenerateBill(ctx context.Context, identity models.Identity, id, websiteURL string) (*models.Project, error) {
	project, err := s.requireAdminAndFetch(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	project.BillGenerated = true
	project.WebsiteURL = websiteURL
	project.BillDate = &now

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("updating project %q: %w", id, err)
	}
	return project, nil
}

// MarkPayment records a payment milestone. "advance" moves the payment status
// to advance_paid, "full" to completed; the flags are never cleared through
// this operation.
func (s *projectService) MarkPayment(ctx context.Context, identity models.Identity, id, paymentType string) (*models.Project, error) {
	// Authorization is checked before the payload.
	project, err := s.requireAdminAndFetch(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	if paymentType != "advance" && paymentType != "full" {
		return nil, ErrInvalidPaymentType
	}

	switch paymentType {
	case "advance":
		project.AdvancePaid = true
		project.PaymentStatus = models.PaymentAdvancePaid
	case "full":
		project.FullPaid = true
		project.PaymentStatus = models.PaymentCompleted
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("updating project %q: %w", id, err)
	}
	return project, nil
}

func (s *projectService) requireAdminAndFetch(ctx context.Context, identity models.Identity, id string) (*models.Project, error) {
	if !identity.IsAdmin() {
		return nil, ErrUnauthorized
	}
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrProjectNotFound, id)
		}
		return nil, fmt.Errorf("getting project %q: %w", id, err)
	}
	return project, nil
}
