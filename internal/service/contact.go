package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/octobees/cladding-site/internal/dto"
	"github.com/octobees/cladding-site/internal/entity"
	"github.com/octobees/cladding-site/internal/repository"
)

// InquiryNotifier is called after an inquiry has been stored. Delivery
// (admin alert, client confirmation) is not implemented yet.
type InquiryNotifier interface {
	InquirySubmitted(ctx context.Context, contact *entity.Contact) error
}

// NoopNotifier satisfies InquiryNotifier without side effects.
type NoopNotifier struct{}

// InquirySubmitted implements InquiryNotifier.
func (NoopNotifier) InquirySubmitted(context.Context, *entity.Contact) error { return nil }

// ContactService validates and persists contact inquiries.
type ContactService struct {
	repo        repository.ContactsRepository
	notifier    InquiryNotifier
	logger      *zap.Logger
	phoneRegion string
	now         func() time.Time
}

// ContactServiceOption configures optional dependencies.
type ContactServiceOption func(*ContactService)

// WithNotifier overrides the post-submission hook.
func WithNotifier(notifier InquiryNotifier) ContactServiceOption {
	return func(s *ContactService) {
		if notifier != nil {
			s.notifier = notifier
		}
	}
}

// WithLogger sets the logger used for hook failures.
func WithLogger(logger *zap.Logger) ContactServiceOption {
	return func(s *ContactService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPhoneRegion sets the region used to normalise national phone numbers.
func WithPhoneRegion(region string) ContactServiceOption {
	return func(s *ContactService) {
		s.phoneRegion = region
	}
}

// WithClock overrides the time source for createdAt.
func WithClock(now func() time.Time) ContactServiceOption {
	return func(s *ContactService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewContactService builds a ContactService with a no-op notifier by default.
func NewContactService(repo repository.ContactsRepository, opts ...ContactServiceOption) *ContactService {
	s := &ContactService{
		repo:        repo,
		notifier:    NoopNotifier{},
		logger:      zap.NewNop(),
		phoneRegion: defaultPhoneRegion,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates a full inquiry and persists it with status "new".
// It returns *ValidationError when any rule fails, or an error wrapping
// ErrStoreWriteFailure when the insert does not succeed.
func (s *ContactService) Submit(ctx context.Context, form dto.ContactForm) (*entity.Contact, error) {
	normalized, violations := ValidateContact(form, s.phoneRegion)
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	contact := &entity.Contact{
		Name:        normalized.Name,
		Email:       normalized.Email,
		Phone:       optional(normalized.Phone),
		Company:     optional(normalized.Company),
		ProjectType: normalized.ProjectType,
		Message:     normalized.Message,
		Budget:      optional(normalized.Budget),
		Timeline:    optional(normalized.Timeline),
		Status:      entity.StatusNew,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreWriteFailure, err)
	}

	if err := s.notifier.InquirySubmitted(ctx, contact); err != nil {
		s.logger.Warn("inquiry notification failed", zap.String("contact_id", contact.ID.String()), zap.Error(err))
	}

	return contact, nil
}

// SubmitQuickQuote applies the quick-quote defaults for budget and timeline, then submits.
func (s *ContactService) SubmitQuickQuote(ctx context.Context, form dto.ContactForm) (*entity.Contact, error) {
	if form.Budget == "" {
		form.Budget = entity.BudgetNotSpecified
	}
	if form.Timeline == "" {
		form.Timeline = entity.TimelineFlexible
	}
	return s.Submit(ctx, form)
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
