package application

import (
	"context"
	"fmt"
	"strings"

	configdomain "github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/config/domain"
	"github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/pipeline/domain"
	"github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/pipeline/infrastructure"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// snippetSeparator joins generated snippets before aggregation.
const snippetSeparator = "\n\n"

// Observer receives stage output as soon as it exists. Calls are made from
// the goroutine running the pipeline, in stage order.
type Observer interface {
	OnStage(event domain.StageEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(event domain.StageEvent)

func (f ObserverFunc) OnStage(event domain.StageEvent) { f(event) }

type nopObserver struct{}

func (nopObserver) OnStage(domain.StageEvent) {}

// Orchestrator defines the requirements-to-code pipeline.
type Orchestrator interface {
	Run(ctx context.Context, requirements string, observer Observer) (*domain.Result, error)
	Roles() []configdomain.RoleConfig
}

// orchestrator holds only immutable dependencies; all run state lives in run.
type orchestrator struct {
	requirementsAgent *Agent
	userStoryAgent    *Agent
	codeGenAgent      *Agent
	aggregatorAgent   *Agent
	concurrency       int
	roles             []configdomain.RoleConfig
	logger            *zap.Logger
}

// NewOrchestrator builds the four agents over one shared client.
func NewOrchestrator(client infrastructure.ChatClient, appConfig *configdomain.AppConfig, logger *zap.Logger) Orchestrator {
	roles := appConfig.Roles
	params := appConfig.ModelParams
	concurrency := appConfig.CodeGeneration.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &orchestrator{
		requirementsAgent: NewAgent(roles.Requirements, params, client),
		userStoryAgent:    NewAgent(roles.UserStory, params, client),
		codeGenAgent:      NewAgent(roles.CodeGen, params, client),
		aggregatorAgent:   NewAgent(roles.Aggregator, params, client),
		concurrency:       concurrency,
		roles:             roles.All(),
		logger:            logger,
	}
}

// Roles returns the role configuration in pipeline order.
func (o *orchestrator) Roles() []configdomain.RoleConfig {
	return append([]configdomain.RoleConfig(nil), o.roles...)
}

type run struct {
	id       string
	stage    domain.Stage
	observer Observer
	logger   *zap.Logger
}

func (r *run) enter(stage domain.Stage) {
	r.logger.Debug("stage transition", zap.String("from", string(r.stage)), zap.String("to", string(stage)))
	r.stage = stage
}

func (r *run) emit(event domain.StageEvent) {
	event.RunID = r.id
	event.Stage = r.stage
	r.observer.OnStage(event)
}

// Run executes one submission end to end. Any model failure aborts the run;
// events already delivered to observer stay delivered.
func (o *orchestrator) Run(ctx context.Context, requirements string, observer Observer) (*domain.Result, error) {
	if observer == nil {
		observer = nopObserver{}
	}
	id := uuid.NewString()
	r := &run{
		id:       id,
		stage:    domain.StageIdle,
		observer: observer,
		logger:   o.logger.With(zap.String("run_id", id)),
	}

	r.enter(domain.StageClarifying)
	r.logger.Info("sending requirements", zap.String("agent", o.requirementsAgent.Name()))
	clarified, err := o.requirementsAgent.Respond(ctx, requirements)
	if err != nil {
		return nil, fmt.Errorf("clarify requirements: %w", err)
	}
	r.emit(domain.StageEvent{Output: clarified})

	r.enter(domain.StageDecomposing)
	r.logger.Info("breaking down requirements into user stories", zap.String("agent", o.userStoryAgent.Name()))
	storiesText, err := o.userStoryAgent.Respond(ctx, requirements)
	if err != nil {
		return nil, fmt.Errorf("decompose user stories: %w", err)
	}
	r.emit(domain.StageEvent{Output: storiesText})

	r.enter(domain.StageParsing)
	stories := ParseUserStories(storiesText)
	r.logger.Info("user stories parsed", zap.Int("count", len(stories)))
	r.emit(domain.StageEvent{Stories: stories})

	r.enter(domain.StageGeneratingCode)
	var generations []domain.Generation
	if o.concurrency > 1 && len(stories) > 1 {
		generations, err = o.generateConcurrent(ctx, r, clarified, stories)
	} else {
		generations, err = o.generateSequential(ctx, r, clarified, stories)
	}
	if err != nil {
		return nil, err
	}
	snippets := domain.NewSnippetMap()
	for _, gen := range generations {
		snippets.Set(gen.Story, gen.Code)
	}

	r.enter(domain.StageAggregating)
	r.logger.Info("aggregating code snippets", zap.String("agent", o.aggregatorAgent.Name()), zap.Int("snippets", snippets.Len()))
	finalCode, err := o.aggregatorAgent.Respond(ctx, strings.Join(snippets.Values(), snippetSeparator))
	if err != nil {
		return nil, fmt.Errorf("aggregate code: %w", err)
	}
	r.emit(domain.StageEvent{Output: finalCode})

	r.enter(domain.StageDone)
	r.emit(domain.StageEvent{})
	r.logger.Info("run complete", zap.Int("stories", len(stories)))

	return &domain.Result{
		RunID:                 id,
		ClarifiedRequirements: clarified,
		UserStories:           stories,
		CodeSnippets:          snippets,
		Generations:           generations,
		FinalCode:             finalCode,
	}, nil
}

// generateSequential prompts the code role with the clarified requirements
// once per story, one call at a time.
func (o *orchestrator) generateSequential(ctx context.Context, r *run, clarified string, stories []string) ([]domain.Generation, error) {
	generations := make([]domain.Generation, 0, len(stories))
	for i, story := range stories {
		r.logger.Info("generating code for user story", zap.Int("story_index", i+1), zap.String("story", story))
		code, err := o.codeGenAgent.Respond(ctx, clarified)
		if err != nil {
			return nil, fmt.Errorf("generate code for user story %d: %w", i+1, err)
		}
		gen := domain.Generation{Index: i + 1, Story: story, Code: code}
		generations = append(generations, gen)
		r.emit(domain.StageEvent{Index: gen.Index, Story: story, Output: code})
	}
	return generations, nil
}

// generateConcurrent issues up to o.concurrency calls at once. Results are
// reported in story order once every call has returned.
func (o *orchestrator) generateConcurrent(ctx context.Context, r *run, clarified string, stories []string) ([]domain.Generation, error) {
	codes := make([]string, len(stories))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, story := range stories {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r.logger.Info("generating code for user story", zap.Int("story_index", i+1), zap.String("story", story))
			code, err := o.codeGenAgent.Respond(gctx, clarified)
			if err != nil {
				return fmt.Errorf("generate code for user story %d: %w", i+1, err)
			}
			codes[i] = code
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	generations := make([]domain.Generation, 0, len(stories))
	for i, story := range stories {
		gen := domain.Generation{Index: i + 1, Story: story, Code: codes[i]}
		generations = append(generations, gen)
		r.emit(domain.StageEvent{Index: gen.Index, Story: story, Output: gen.Code})
	}
	return generations, nil
}
