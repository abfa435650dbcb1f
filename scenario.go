package bdd

// Step is a single fallible unit of test behaviour. It receives the
// scenario fixture and returns a non-nil error to fail the scenario.
type Step[T any] func(fixture T) error

// Scenario accumulates steps against a shared fixture and runs them
// lazily, in registration order, when Run is called. Given, When, Then,
// And, and But are interchangeable; the different names exist only so a
// test body reads as a Gherkin narrative.
//
// A Scenario holds exactly one fixture for its whole lifetime. Steps
// are stored at registration time and executed only by Run.
type Scenario[T any] struct {
	fixture T
	steps   []Step[T]
}

// New creates a scenario around fixture. Every step receives this same
// fixture value, so T should be a pointer (or otherwise reference-like)
// type when steps need to see each other's mutations.
func New[T any](fixture T) *Scenario[T] {
	return &Scenario[T]{fixture: fixture}
}

// Fixture returns the fixture the scenario was created with.
func (s *Scenario[T]) Fixture() T {
	return s.fixture
}

// Given registers a step and returns the scenario for chaining.
func (s *Scenario[T]) Given(step Step[T]) *Scenario[T] {
	return s.add(step)
}

// When registers a step and returns the scenario for chaining.
func (s *Scenario[T]) When(step Step[T]) *Scenario[T] {
	return s.add(step)
}

// Then registers a step and returns the scenario for chaining.
func (s *Scenario[T]) Then(step Step[T]) *Scenario[T] {
	return s.add(step)
}

// And registers a step and returns the scenario for chaining.
func (s *Scenario[T]) And(step Step[T]) *Scenario[T] {
	return s.add(step)
}

// But registers a step and returns the scenario for chaining.
func (s *Scenario[T]) But(step Step[T]) *Scenario[T] {
	return s.add(step)
}

func (s *Scenario[T]) add(step Step[T]) *Scenario[T] {
	s.steps = append(s.steps, step)
	return s
}

// Run executes every registered step in registration order against the
// fixture. Execution stops at the first step that returns a non-nil
// error, and Run returns that error unmodified; later steps do not run.
// Fixture mutations made before the failure are kept.
//
// Running a scenario with no steps is a no-op and returns nil. Run may
// be called again; a second call re-executes all steps, including any
// registered since the previous call, against the already-mutated
// fixture.
func (s *Scenario[T]) Run() error {
	for _, step := range s.steps {
		if err := step(s.fixture); err != nil {
			return err
		}
	}
	return nil
}
