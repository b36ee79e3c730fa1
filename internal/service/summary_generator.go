package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/blaisecz/dailyform-tracker/internal/domain"
	"github.com/blaisecz/dailyform-tracker/internal/langfuse"
	"github.com/blaisecz/dailyform-tracker/internal/llm"
	"github.com/blaisecz/dailyform-tracker/internal/trend"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// SummaryUnavailableText replaces a summary that is empty after trimming.
	SummaryUnavailableText = "Résumé indisponible pour le moment."

	// DefaultSummaryDirective is the task written after the data unless a
	// managed prompt overrides it.
	DefaultSummaryDirective = `Tu es un coach bien-être bienveillant. À partir de ces données, rédige une synthèse de la semaine :
1. Les observations clés.
2. Les tendances et corrélations (par exemple entre sommeil, motivation et humeur).
3. Les points forts et les points de vigilance.`

	// SummaryConstraints closes every prompt, whichever directive is in use.
	SummaryConstraints = `Contraintes de sortie :
- Réponds en français.
- Termine par exactement 3 recommandations concrètes, dans une liste séparée introduite par "Recommandations :".
- 150 mots maximum. Aucun conseil médical.`

	defaultSummaryTimeout = 20 * time.Second
	summaryTraceName      = "weekly-summary"
)

// SummaryGenerator turns a week of metrics into a natural-language summary.
// It never fails: any generation error degrades to a local template.
type SummaryGenerator interface {
	Generate(ctx context.Context, userID string, week domain.Week) domain.SummaryResult
}

// SummaryGeneratorConfig tunes prompt and timeout.
type SummaryGeneratorConfig struct {
	Directive string
	Timeout   time.Duration
}

type summaryGenerator struct {
	generator llm.TextGenerator
	langfuse  langfuse.Client
	logger    *zap.Logger
	directive string
	timeout   time.Duration
}

func NewSummaryGenerator(generator llm.TextGenerator, lf langfuse.Client, logger *zap.Logger, cfg SummaryGeneratorConfig) SummaryGenerator {
	if lf == nil {
		lf = langfuse.NewClient(langfuse.Config{})
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(cfg.Directive) == "" {
		cfg.Directive = DefaultSummaryDirective
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSummaryTimeout
	}

	return &summaryGenerator{
		generator: generator,
		langfuse:  lf,
		logger:    logger,
		directive: cfg.Directive,
		timeout:   cfg.Timeout,
	}
}

func (g *summaryGenerator) Generate(ctx context.Context, userID string, week domain.Week) domain.SummaryResult {
	tracer := otel.Tracer("dailyform-api/summary")
	ctx, span := tracer.Start(ctx, "SummaryGenerator.Generate",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	averages := trend.Aggregate(week.Data)
	coverage := week.Coverage
	prompt := BuildSummaryPrompt(userID, week.Data, averages, g.directive)
	span.SetAttributes(attribute.String("langfuse.observation.input", prompt))

	source := domain.SummarySourceAI
	text, err := g.call(ctx, prompt)
	if err != nil {
		g.logger.Warn("summary generation failed, using fallback",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		source = domain.SummarySourceFallback
		text = FallbackSummary(averages, coverage)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		text = SummaryUnavailableText
	}

	span.SetAttributes(
		attribute.String("summary.source", string(source)),
		attribute.String("langfuse.observation.output", text),
	)

	traceID, _ := g.langfuse.CreateTrace(ctx, langfuse.TraceInput{
		UserID: userID,
		Name:   summaryTraceName,
		Input: map[string]any{
			"prompt":   prompt,
			"averages": averages,
			"coverage": coverage,
		},
		Output: map[string]any{
			"text":   text,
			"source": source,
		},
		Tags: []string{"dailyform", string(source)},
	})

	return domain.SummaryResult{
		Text:     text,
		Source:   source,
		Averages: averages,
		Coverage: coverage,
		TraceID:  traceID,
	}
}

func (g *summaryGenerator) call(ctx context.Context, prompt string) (string, error) {
	if g.generator == nil {
		return "", llm.ErrGenerationUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", llm.ErrGenerationResponse
	}
	return text, nil
}

// BuildSummaryPrompt lays out the raw arrays and averages followed by the
// task directive and the fixed output constraints.
func BuildSummaryPrompt(userID string, data domain.WeeklyData, averages domain.Averages, directive string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Utilisateur : %s\n", userID)
	b.WriteString("Données des 7 derniers jours, du plus ancien au plus récent (0 = non renseigné) :\n")
	writeMetric(&b, "Sommeil (0-10)", data.Sleep, averages.Sleep)
	writeMetric(&b, "Motivation (0-10)", data.Motivation, averages.Motivation)
	writeMetric(&b, "Humeur (1-3)", data.Mood, averages.Mood)
	writeMetric(&b, "Musculation (1-3)", data.Lift, averages.Lift)
	writeMetric(&b, "Endurance (1-3)", data.Endurance, averages.Endurance)
	writeMetric(&b, "Échecs (1-3)", data.Chess, averages.Chess)
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(directive))
	b.WriteString("\n\n")
	b.WriteString(SummaryConstraints)
	return b.String()
}

func writeMetric(b *strings.Builder, label string, values []int, average float64) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	fmt.Fprintf(b, "- %s : [%s], moyenne %.1f\n", label, strings.Join(parts, ", "), average)
}

// FallbackSummary is the deterministic text used when generation fails.
func FallbackSummary(averages domain.Averages, coverage domain.Coverage) string {
	return fmt.Sprintf(
		"Synthèse automatique (analyse IA indisponible).\n"+
			"Sur les 7 derniers jours : %d formulaire(s) du matin et %d formulaire(s) du soir renseignés.\n"+
			"Moyennes : sommeil %.1f/10, motivation %.1f/10, humeur %.1f/3, musculation %.1f/3, endurance %.1f/3, échecs %.1f/3.\n"+
			"Recommandations :\n"+
			"- Remplis les deux formulaires chaque jour pour une analyse plus fiable.\n"+
			"- Garde des horaires de coucher réguliers.\n"+
			"- Fixe chaque matin deux objectifs concrets et atteignables.",
		coverage.MorningDays, coverage.EveningDays,
		averages.Sleep, averages.Motivation, averages.Mood,
		averages.Lift, averages.Endurance, averages.Chess,
	)
}
