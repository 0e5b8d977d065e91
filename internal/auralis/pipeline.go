package auralis

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrEmptyMessage is returned when a turn arrives without message text.
// It is the only pipeline error surfaced to the caller; everything past
// input validation degrades instead of failing.
var ErrEmptyMessage = errors.New("message is required")

// Recorder persists turns and analytics. All pipeline calls to it are
// best-effort: errors are logged and swallowed so a storage outage never
// breaks the conversation.
type Recorder interface {
	AppendMessage(ctx context.Context, sessionID, sender, content string, metadata map[string]any) error
	AppendAnalytics(ctx context.Context, sessionID, intent string, confidence float64, escalated bool, page string, messageLength int) error
	RecordEscalation(ctx context.Context, sessionID string, esc Escalation) error
}

// Request is one inbound user turn.
type Request struct {
	SessionID string
	Message   string
	Page      string
	UserAgent string
	Referrer  string
}

// Pipeline wires the classifier, responder, escalation detector, and
// suggestion generator into the per-turn control flow.
type Pipeline struct {
	classifier *Classifier
	responder  *Responder
	registry   *Registry
	recorder   Recorder
	logger     *zap.Logger
}

// NewPipeline creates a pipeline. recorder may be nil, in which case turns
// are not persisted.
func NewPipeline(classifier *Classifier, responder *Responder, registry *Registry, recorder Recorder, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		classifier: classifier,
		responder:  responder,
		registry:   registry,
		recorder:   recorder,
		logger:     logger,
	}
}

// Registry exposes the session context registry for callers that manage
// session lifecycle.
func (p *Pipeline) Registry() *Registry { return p.registry }

// Classifier exposes the intent classifier for read-only use.
func (p *Pipeline) Classifier() *Classifier { return p.classifier }

// Process runs one conversation turn: refresh context, classify, record
// history, detect escalation, generate the reply, build suggestions, and
// persist everything best-effort.
func (p *Pipeline) Process(ctx context.Context, req Request) (*Turn, error) {
	if req.Message == "" {
		return nil, ErrEmptyMessage
	}

	convCtx := p.registry.Get(req.SessionID, req.Page, req.UserAgent, req.Referrer)
	convCtx.Touch(req.Page, req.UserAgent, req.Referrer)

	det := p.classifier.Classify(req.Message)
	convCtx.RecordMessage(req.Message, &det)

	esc := DetectEscalation(req.Message, convCtx.MessageCount, convCtx.IntentHistory())

	p.persistUserMessage(ctx, req)

	reply := p.responder.Generate(ctx, req.Message, det)
	suggestions := Suggest(det, convCtx)

	p.persistBotTurn(ctx, req, det, reply, suggestions, esc)

	return &Turn{
		SessionID:   req.SessionID,
		Reply:       reply,
		Detection:   det,
		Suggestions: suggestions,
		Escalation:  esc,
	}, nil
}

func (p *Pipeline) persistUserMessage(ctx context.Context, req Request) {
	if p.recorder == nil {
		return
	}
	if err := p.recorder.AppendMessage(ctx, req.SessionID, "user", req.Message, nil); err != nil {
		p.logger.Warn("saving user message failed",
			zap.String("session_id", req.SessionID), zap.Error(err))
	}
}

func (p *Pipeline) persistBotTurn(ctx context.Context, req Request, det Detection, reply string, suggestions []string, esc *Escalation) {
	if p.recorder == nil {
		return
	}

	metadata := map[string]any{
		"intent":      det.Intent,
		"suggestions": suggestions,
		"escalation":  esc != nil,
	}
	if err := p.recorder.AppendMessage(ctx, req.SessionID, "bot", reply, metadata); err != nil {
		p.logger.Warn("saving bot message failed",
			zap.String("session_id", req.SessionID), zap.Error(err))
	}

	page := req.Page
	if page == "" {
		page = "/"
	}
	if err := p.recorder.AppendAnalytics(ctx, req.SessionID, det.Intent, det.Confidence, esc != nil, page, len(req.Message)); err != nil {
		p.logger.Warn("saving analytics event failed",
			zap.String("session_id", req.SessionID), zap.Error(err))
	}

	if esc != nil {
		if err := p.recorder.RecordEscalation(ctx, req.SessionID, *esc); err != nil {
			p.logger.Warn("saving escalation failed",
				zap.String("session_id", req.SessionID), zap.Error(err))
		}
	}
}
