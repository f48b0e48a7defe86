// Package card owns card content and composes it with the ordering engine,
// running every mutation as one transaction
package card

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/cardstack/internal/database"
	"github.com/thenoetrevino/cardstack/internal/events"
	"github.com/thenoetrevino/cardstack/internal/metrics"
	"github.com/thenoetrevino/cardstack/internal/models"
	"github.com/thenoetrevino/cardstack/internal/ordering"
	"github.com/thenoetrevino/cardstack/internal/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName     = "github.com/thenoetrevino/cardstack/internal/services/card"
	maxTitleLength = 255
)

// Service defines all card-related business operations
type Service interface {
	// Read operations
	GetCard(ctx context.Context, cardID types.CardID) (*models.CardDetail, error)
	ListColumn(ctx context.Context, columnID types.ColumnID) ([]*models.CardSummary, error)
	Board(ctx context.Context) ([]*models.ColumnCards, error)
	VerifyDensity(ctx context.Context) error
	Totals(ctx context.Context) (models.OpTotals, error)

	// Write operations
	InsertCard(ctx context.Context, req InsertCardRequest) (*models.Card, error)
	MoveCard(ctx context.Context, cardID types.CardID, to Position) (*models.CardPosition, error)
	DeleteCard(ctx context.Context, cardID types.CardID) error
	UpdateCard(ctx context.Context, req UpdateCardRequest) (*models.Card, error)
}

// Position is a requested placement. Out-of-range positions are clamped.
type Position struct {
	ColumnID types.ColumnID
	Position types.Position
}

// InsertCardRequest encapsulates all data needed to insert a card
type InsertCardRequest struct {
	Card     models.Card
	Position Position
}

// UpdateCardRequest encapsulates a content change
// Fields with pointers are optional - nil means don't update
type UpdateCardRequest struct {
	CardID      types.CardID
	Title       *string
	Description *string
}

// service implements Service interface
type service struct {
	db        *sql.DB
	strategy  string
	publisher events.Publisher
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

// NewService creates a new card service over db
func NewService(db *sql.DB, opts ...Option) Service {
	s := &service{
		db:      db,
		metrics: metrics.NewMetrics(),
		tracer:  otel.GetTracerProvider().Tracer(tracerName),
	}
	for _, opt := range append(defaultOptions(), opts...) {
		opt(s)
	}
	return s
}

// txStores is the set of stores bound to one transaction
type txStores struct {
	cards     *database.CardStore
	columns   *database.ColumnStore
	positions *database.PositionStore
	counters  *database.CounterStore
	engine    *ordering.Engine
}

func (s *service) bind(tx *sql.Tx) *txStores {
	positions := database.NewPositionStore(tx, s.strategy)
	return &txStores{
		cards:     database.NewCardStore(tx),
		columns:   database.NewColumnStore(tx),
		positions: positions,
		counters:  database.NewCounterStore(tx),
		engine:    ordering.New(positions),
	}
}

// inTx runs fn in one transaction and records failures against op
func (s *service) inTx(ctx context.Context, op string, fn func(st *txStores) error) error {
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return fn(s.bind(tx))
	})
	if err != nil {
		s.recordFailure(op, err)
	}
	return err
}

// ============================================================================
// WRITE OPERATIONS
// ============================================================================

// InsertCard creates the content row and places the card in its column
func (s *service) InsertCard(ctx context.Context, req InsertCardRequest) (card *models.Card, err error) {
	ctx, span := s.tracer.Start(ctx, "card.InsertCard", trace.WithAttributes(
		attribute.Int64("card.id", req.Card.ID.Int64()),
		attribute.Int64("column.id", req.Position.ColumnID.Int64()),
		attribute.Int("position.requested", int(req.Position.Position)),
	))
	defer func() { endSpan(span, err) }()

	if err := validateInsert(req); err != nil {
		return nil, err
	}

	content := req.Card
	content.Title = strings.TrimSpace(content.Title)

	var result ordering.Result
	err = s.inTx(ctx, "insert", func(st *txStores) error {
		if err := requireColumn(ctx, st, req.Position.ColumnID); err != nil {
			return err
		}

		exists, err := st.cards.Exists(ctx, content.ID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("card %d: %w", content.ID, models.ErrDuplicateID)
		}

		if err := st.cards.Insert(ctx, &content); err != nil {
			return err
		}

		result, err = st.engine.Insert(ctx, content.ID, ordering.Slot{
			ColumnID: req.Position.ColumnID,
			Position: req.Position.Position,
		})
		if err != nil {
			return err
		}

		if err := st.count(ctx, database.CounterInserts, result); err != nil {
			return err
		}

		card, err = st.cards.Get(ctx, content.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert card: %w", err)
	}

	span.SetAttributes(
		attribute.Int("position.final", int(result.Position.Position)),
		attribute.Int64("rows.shifted", result.Shifted),
	)
	s.metrics.IncInserts()
	s.metrics.AddRowsShifted(result.Shifted)
	s.publish(result.Position.ColumnID)

	slog.Debug("card inserted",
		"card_id", card.ID,
		"column_id", result.Position.ColumnID,
		"position", result.Position.Position,
		"rows_shifted", result.Shifted)

	return card, nil
}

// MoveCard relocates a card within its column or into another one
func (s *service) MoveCard(ctx context.Context, cardID types.CardID, to Position) (placed *models.CardPosition, err error) {
	ctx, span := s.tracer.Start(ctx, "card.MoveCard", trace.WithAttributes(
		attribute.Int64("card.id", cardID.Int64()),
		attribute.Int64("column.id", to.ColumnID.Int64()),
		attribute.Int("position.requested", int(to.Position)),
	))
	defer func() { endSpan(span, err) }()

	if !cardID.Valid() {
		return nil, ErrInvalidCardID
	}
	if !to.ColumnID.Valid() {
		return nil, ErrInvalidColumnID
	}

	var (
		from   models.CardPosition
		result ordering.Result
	)
	err = s.inTx(ctx, "move", func(st *txStores) error {
		var err error
		from, err = st.positions.PositionOf(ctx, cardID)
		if err != nil {
			return err
		}

		if to.ColumnID != from.ColumnID {
			if err := requireColumn(ctx, st, to.ColumnID); err != nil {
				return err
			}
		}

		result, err = st.engine.Move(ctx, cardID,
			ordering.Slot{ColumnID: from.ColumnID, Position: from.Position},
			ordering.Slot{ColumnID: to.ColumnID, Position: to.Position},
		)
		if err != nil {
			return err
		}
		return st.count(ctx, database.CounterMoves, result)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to move card: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("column.source", from.ColumnID.Int64()),
		attribute.Int("position.final", int(result.Position.Position)),
		attribute.Int64("rows.shifted", result.Shifted),
		attribute.Bool("noop", result.NoOp),
	)
	s.metrics.IncMoves()
	s.metrics.AddRowsShifted(result.Shifted)
	if !result.NoOp {
		s.publish(from.ColumnID, result.Position.ColumnID)
	}

	slog.Debug("card moved",
		"card_id", cardID,
		"from_column", from.ColumnID,
		"from_position", from.Position,
		"to_column", result.Position.ColumnID,
		"to_position", result.Position.Position,
		"rows_shifted", result.Shifted)

	placed = &result.Position
	return placed, nil
}

// DeleteCard removes a card and compacts the column it was in
func (s *service) DeleteCard(ctx context.Context, cardID types.CardID) (err error) {
	ctx, span := s.tracer.Start(ctx, "card.DeleteCard", trace.WithAttributes(
		attribute.Int64("card.id", cardID.Int64()),
	))
	defer func() { endSpan(span, err) }()

	if !cardID.Valid() {
		return ErrInvalidCardID
	}

	var result ordering.Result
	err = s.inTx(ctx, "delete", func(st *txStores) error {
		at, err := st.positions.PositionOf(ctx, cardID)
		if err != nil {
			return err
		}

		result, err = st.engine.Delete(ctx, cardID, ordering.Slot{ColumnID: at.ColumnID, Position: at.Position})
		if err != nil {
			return err
		}
		if err := st.count(ctx, database.CounterDeletes, result); err != nil {
			return err
		}

		return st.cards.Delete(ctx, cardID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("column.id", result.Position.ColumnID.Int64()),
		attribute.Int64("rows.shifted", result.Shifted),
	)
	s.metrics.IncDeletes()
	s.metrics.AddRowsShifted(result.Shifted)
	s.publish(result.Position.ColumnID)

	slog.Debug("card deleted",
		"card_id", cardID,
		"column_id", result.Position.ColumnID,
		"position", result.Position.Position,
		"rows_shifted", result.Shifted)

	return nil
}

// UpdateCard changes title and/or description; the placement is untouched
func (s *service) UpdateCard(ctx context.Context, req UpdateCardRequest) (card *models.Card, err error) {
	ctx, span := s.tracer.Start(ctx, "card.UpdateCard", trace.WithAttributes(
		attribute.Int64("card.id", req.CardID.Int64()),
	))
	defer func() { endSpan(span, err) }()

	if !req.CardID.Valid() {
		return nil, ErrInvalidCardID
	}
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return nil, err
		}
	}

	var columnID types.ColumnID
	err = s.inTx(ctx, "update", func(st *txStores) error {
		current, err := st.cards.Get(ctx, req.CardID)
		if err != nil {
			return err
		}

		title, description := current.Title, current.Description
		if req.Title != nil {
			title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			description = *req.Description
		}

		if err := st.cards.Update(ctx, req.CardID, title, description); err != nil {
			return err
		}

		at, err := st.positions.PositionOf(ctx, req.CardID)
		if err != nil {
			return err
		}
		columnID = at.ColumnID

		card, err = st.cards.Get(ctx, req.CardID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	s.publish(columnID)
	return card, nil
}

// ============================================================================
// READ OPERATIONS
// ============================================================================

// GetCard retrieves a card's content together with its placement
func (s *service) GetCard(ctx context.Context, cardID types.CardID) (detail *models.CardDetail, err error) {
	ctx, span := s.tracer.Start(ctx, "card.GetCard", trace.WithAttributes(
		attribute.Int64("card.id", cardID.Int64()),
	))
	defer func() { endSpan(span, err) }()

	if !cardID.Valid() {
		return nil, ErrInvalidCardID
	}
	return database.NewCardStore(s.db).Detail(ctx, cardID)
}

// ListColumn returns the column's cards in position order
func (s *service) ListColumn(ctx context.Context, columnID types.ColumnID) (cards []*models.CardSummary, err error) {
	ctx, span := s.tracer.Start(ctx, "card.ListColumn", trace.WithAttributes(
		attribute.Int64("column.id", columnID.Int64()),
	))
	defer func() { endSpan(span, err) }()

	if !columnID.Valid() {
		return nil, ErrInvalidColumnID
	}

	err = s.inTx(ctx, "list", func(st *txStores) error {
		if err := requireColumn(ctx, st, columnID); err != nil {
			return err
		}
		var err error
		cards, err = st.cards.ListByColumn(ctx, columnID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// Board returns every column with its cards, read from one snapshot
func (s *service) Board(ctx context.Context) (board []*models.ColumnCards, err error) {
	ctx, span := s.tracer.Start(ctx, "card.Board")
	defer func() { endSpan(span, err) }()

	err = s.inTx(ctx, "board", func(st *txStores) error {
		columns, err := st.columns.List(ctx)
		if err != nil {
			return err
		}

		board = make([]*models.ColumnCards, 0, len(columns))
		for _, col := range columns {
			cards, err := st.cards.ListByColumn(ctx, col.ID)
			if err != nil {
				return err
			}
			board = append(board, &models.ColumnCards{Column: *col, Cards: cards})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}

// VerifyDensity re-reads every column and reports the first one whose
// positions are not exactly 0..n-1
func (s *service) VerifyDensity(ctx context.Context) (err error) {
	ctx, span := s.tracer.Start(ctx, "card.VerifyDensity")
	defer func() { endSpan(span, err) }()

	checked := 0
	err = s.inTx(ctx, "verify", func(st *txStores) error {
		columns, err := st.columns.List(ctx)
		if err != nil {
			return err
		}

		for _, col := range columns {
			positions, err := st.positions.PositionsInColumn(ctx, col.ID)
			if err != nil {
				return err
			}
			if err := ordering.CheckDense(positions); err != nil {
				return err
			}
			checked++
		}
		return nil
	})
	if err != nil {
		return err
	}

	span.SetAttributes(attribute.Int("columns.checked", checked))
	return nil
}

// Totals returns the operation counts committed to this database by any process
func (s *service) Totals(ctx context.Context) (totals models.OpTotals, err error) {
	ctx, span := s.tracer.Start(ctx, "card.Totals")
	defer func() { endSpan(span, err) }()

	return database.NewCounterStore(s.db).Totals(ctx)
}

// ============================================================================
// HELPER FUNCTIONS
// ============================================================================

// count records one committed operation and the rows it renumbered
func (st *txStores) count(ctx context.Context, op string, result ordering.Result) error {
	if err := st.counters.Add(ctx, op, 1); err != nil {
		return err
	}
	return st.counters.Add(ctx, database.CounterRowsShifted, result.Shifted)
}

func requireColumn(ctx context.Context, st *txStores, columnID types.ColumnID) error {
	ok, err := st.columns.Exists(ctx, columnID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("column %d: %w", columnID, models.ErrInvalidColumn)
	}
	return nil
}

func validateInsert(req InsertCardRequest) error {
	if !req.Card.ID.Valid() {
		return ErrInvalidCardID
	}
	if !req.Position.ColumnID.Valid() {
		return ErrInvalidColumnID
	}
	return validateTitle(req.Card.Title)
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// recordFailure counts and logs errors that matter to operators
func (s *service) recordFailure(op string, err error) {
	switch {
	case errors.Is(err, models.ErrConstraintViolation):
		s.metrics.IncConstraintViolations()
		slog.Error("card operation violated position constraint", "op", op, "error", err)
	case errors.Is(err, models.ErrStoreUnavailable):
		s.metrics.IncStoreUnavailable()
		slog.Warn("card store unavailable", "op", op, "error", err)
	}
}

// publish sends a change event for the given columns (if a publisher exists)
func (s *service) publish(columnIDs ...types.ColumnID) {
	if s.publisher == nil {
		return
	}

	unique := make([]types.ColumnID, 0, len(columnIDs))
	for _, id := range columnIDs {
		if !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}

	event := events.Event{
		Type:      events.EventCardsChanged,
		ColumnIDs: unique,
		Timestamp: time.Now(),
	}
	if err := s.publisher.Publish(event); err != nil {
		slog.Warn("failed to publish change event", "column_ids", unique, "error", err)
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
