package prompt

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"rhystmorgan/aniTerm/internal/validation"
)

const defaultMaxAttempts = 3

// Result is a form that passed validation.
type Result struct {
	Kind   validation.FormKind
	Values validation.Values
}

type field struct {
	name   string
	label  string
	secure bool
}

// Runner walks the user through a form with line prompts, re-asking for
// the fields that fail until the whole form validates.
type Runner struct {
	driver      Driver
	logger      *zap.Logger
	catalog     *validation.Catalog
	text        text
	maxAttempts int
}

// Option configures the Runner.
type Option func(*Runner)

// WithDriver overrides the prompt driver.
func WithDriver(driver Driver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMaxAttempts caps how many full validation rounds a form gets.
func WithMaxAttempts(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

func NewRunner(catalog *validation.Catalog, opts ...Option) *Runner {
	if catalog == nil {
		catalog = validation.NewCatalog(validation.DefaultLanguage)
	}
	r := &Runner{
		logger:      zap.NewNop(),
		catalog:     catalog,
		text:        textFor(catalog.Language()),
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver()
	}
	return r
}

// Run asks which form to fill, fills it and prints the outcome.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	choice, err := r.driver.Select(ctx, SelectConfig{
		Message: r.text.choose,
		Options: []string{r.text.login, r.text.register},
	})
	if err != nil {
		return Result{}, err
	}

	kind := validation.FormLogin
	if choice == 1 {
		kind = validation.FormRegistration
	}

	values, err := r.Fill(ctx, kind)
	if err != nil {
		return Result{}, err
	}

	var msg string
	if kind == validation.FormLogin {
		msg = fmt.Sprintf(r.text.loginSuccess, values.Get(validation.FieldEmail))
	} else {
		msg = fmt.Sprintf(r.text.registerSuccess, values.Get(validation.FieldName))
	}
	if err := r.driver.Info(ctx, msg); err != nil {
		return Result{}, err
	}

	return Result{Kind: kind, Values: values}, nil
}

// Fill prompts for every field of the form. Each answer is checked against
// its own field rules as it is typed; the whole form is then validated and
// only the failing fields are asked again.
func (r *Runner) Fill(ctx context.Context, kind validation.FormKind) (validation.Values, error) {
	schema, err := validation.SchemaFor(kind, r.catalog)
	if err != nil {
		return nil, err
	}

	fields := r.fieldsFor(kind)
	values := make(validation.Values, len(fields))
	pending := make([]string, 0, len(fields))
	for _, f := range fields {
		pending = append(pending, f.name)
	}

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		for _, name := range pending {
			f := lookupField(fields, name)
			value, err := r.ask(ctx, schema, f)
			if err != nil {
				return nil, err
			}
			values[f.name] = value
		}

		result := validation.Validate(schema, values)
		r.logger.Info("form submitted",
			zap.String("form", schema.Name),
			zap.Bool("valid", result.Valid()),
			zap.Strings("invalid_fields", result.Fields()),
			zap.Int("attempt", attempt),
		)
		if result.Valid() {
			return values, nil
		}

		if err := r.driver.Info(ctx, r.text.invalid); err != nil {
			return nil, err
		}
		for _, name := range result.Fields() {
			if err := r.driver.Info(ctx, "⚠️ "+result.Message(name)); err != nil {
				return nil, err
			}
		}
		pending = result.Fields()
	}

	return nil, ErrTooManyAttempts
}

func (r *Runner) ask(ctx context.Context, schema *validation.FormSchema, f field) (string, error) {
	cfg := InputConfig{
		Message: f.label,
		Validator: func(value string) error {
			if verr, ok := validation.ValidateField(schema, f.name, value); !ok {
				return errors.New(verr.Message)
			}
			return nil
		},
	}
	if f.secure {
		return r.driver.Password(ctx, cfg)
	}
	return r.driver.Input(ctx, cfg)
}

func (r *Runner) fieldsFor(kind validation.FormKind) []field {
	if kind == validation.FormRegistration {
		return []field{
			{name: validation.FieldName, label: r.text.name},
			{name: validation.FieldEmail, label: r.text.email},
			{name: validation.FieldPassword, label: r.text.password, secure: true},
			{name: validation.FieldConfirmPassword, label: r.text.confirm, secure: true},
		}
	}
	return []field{
		{name: validation.FieldEmail, label: r.text.email},
		{name: validation.FieldPassword, label: r.text.password, secure: true},
	}
}

func lookupField(fields []field, name string) field {
	for _, f := range fields {
		if f.name == name {
			return f
		}
	}
	return field{name: name, label: name}
}
