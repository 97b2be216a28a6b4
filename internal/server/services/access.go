package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/dmitrijs2005/tokengate/internal/logging"
	"github.com/dmitrijs2005/tokengate/internal/server/auth"
	"github.com/dmitrijs2005/tokengate/internal/server/metrics"
	"github.com/dmitrijs2005/tokengate/internal/server/models"
	"github.com/dmitrijs2005/tokengate/internal/server/repositories/repomanager"
)

// MaxAttempts bounds how often a capability change is retried after losing
// a version race to a concurrent writer.
const MaxAttempts = 5

// AccessLedger reads and meters changes to an account's capability vectors.
// Every flipped slot costs one token; unchanged slots are free.
type AccessLedger struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	resolver    *auth.Resolver
	logger      logging.Logger
	metrics     Recorder
}

func NewAccessLedger(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger, rec Recorder) *AccessLedger {
	return &AccessLedger{
		db:          db,
		repomanager: m,
		resolver:    auth.NewResolver(m.Accounts(db), m.Sessions(db)),
		logger:      l.With("module", "access_ledger"),
		metrics:     recorderOrNop(rec),
	}
}

// GetCapabilityAccess returns the caller's stored vector for domain. An
// unset or empty vector is reported as a failure.
func (l *AccessLedger) GetCapabilityAccess(ctx context.Context, p *auth.Principal, domain string) AccessResult {
	d, res := parseDomain(domain)
	if !res.Valid {
		return AccessResult{Result: res}
	}

	acc, err := l.resolver.Resolve(ctx, p)
	if err != nil {
		return AccessResult{Result: resolveFailure(ctx, l.logger, err)}
	}

	v := acc.Access(d)
	if len(v) == 0 {
		return AccessResult{Result: fail(KindNotFound, MsgNoCapabilityAccess)}
	}
	return AccessResult{Result: ok(), Vector: v.Clone()}
}

// SetCapabilityAccess replaces the caller's vector for domain with
// requested and charges one token per flipped slot.
//
// A request shorter than the stored vector clears the trailing slots and is
// stored padded to the stored length. A request that changes nothing is
// free and writes nothing. On any failure the returned vector is the stored
// one and the balance is untouched.
func (l *AccessLedger) SetCapabilityAccess(ctx context.Context, p *auth.Principal, domain string, requested models.Vector) AccessResult {
	d, res := parseDomain(domain)
	if !res.Valid {
		return AccessResult{Result: res}
	}
	if len(requested) > models.Slots {
		return AccessResult{Result: fail(KindValidationFailed,
			fmt.Sprintf("Capability vector has %d slots, at most %d allowed.", len(requested), models.Slots))}
	}

	acc, err := l.resolver.Resolve(ctx, p)
	if err != nil {
		return AccessResult{Result: resolveFailure(ctx, l.logger, err)}
	}

	repo := l.repomanager.Accounts(l.db)

	for attempt := 1; ; attempt++ {
		current := acc.Access(d)

		change := models.Diff(current, requested)
		if change == 0 {
			l.metrics.CapabilityChange(domain, metrics.OutcomeNoop, 0)
			return AccessResult{Result: ok(), Vector: current.Clone()}
		}

		if acc.Tokens < int64(change) {
			l.metrics.CapabilityChange(domain, metrics.OutcomeInsufficientFunds, 0)
			return AccessResult{
				Result: fail(KindInsufficientFunds,
					fmt.Sprintf("Insufficient tokens: %d required, %d available.", change, acc.Tokens)),
				Vector: current.Clone(),
			}
		}

		next := acc.WithAccess(d, requested.Padded(len(current)), acc.Tokens-int64(change))

		_, err := repo.UpdateAccess(ctx, acc.ID, d, next.Access(d), next.Tokens, acc.Version)
		if err == nil {
			l.logger.Info(ctx, "capability access changed",
				"user_id", acc.ID, "domain", domain, "charged", change, "balance", next.Tokens)
			l.metrics.CapabilityChange(domain, metrics.OutcomeOK, change)
			return AccessResult{Result: ok(), Vector: next.Access(d).Clone()}
		}

		if !errors.Is(err, common.ErrVersionConflict) {
			l.metrics.CapabilityChange(domain, metrics.OutcomeError, 0)
			return AccessResult{Result: storeFailure(ctx, l.logger, err), Vector: current.Clone()}
		}

		l.logger.Debug(ctx, "capability version conflict", "user_id", acc.ID, "attempt", attempt)

		fresh, err := repo.FindByID(ctx, acc.ID)
		if err != nil {
			l.metrics.CapabilityChange(domain, metrics.OutcomeError, 0)
			return AccessResult{Result: resolveFailure(ctx, l.logger, err), Vector: current.Clone()}
		}
		acc = fresh

		if attempt == MaxAttempts {
			l.logger.Warn(ctx, "capability update retries exhausted", "user_id", acc.ID, "domain", domain)
			l.metrics.CapabilityChange(domain, metrics.OutcomeConflict, 0)
			return AccessResult{
				Result: fail(KindPersistenceFailed, MsgConcurrentUpdate),
				Vector: acc.Access(d).Clone(),
			}
		}
	}
}

func parseDomain(name string) (models.Domain, Result) {
	d, err := models.ParseDomain(name)
	if err != nil {
		return "", fail(KindValidationFailed, fmt.Sprintf("Unknown capability domain '%s'.", name))
	}
	return d, ok()
}
