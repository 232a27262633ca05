package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"branding-agent/internal/application/command"
	"branding-agent/internal/application/common"
	"branding-agent/internal/infrastructure/db/postgres"
)

// stubGenerator plays the external text service in tests.
type stubGenerator struct {
	responses []string
	err       error
	calls     int
}

func (s *stubGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	resp := s.responses[0]
	if len(s.responses) > 1 {
		s.responses = s.responses[1:]
	}
	return resp, nil
}

func TestGenerateRefusedForIncompleteProfile(t *testing.T) {
	db := setupTestDB(t)
	userRepo := postgres.NewUserRepository(db)
	user := createTestUser(t, userRepo, "jane@example.com")

	gen := &stubGenerator{responses: []string{"never used"}}
	svc := NewContentService(userRepo, gen)

	_, err := svc.Generate(context.Background(), &command.GeneratePostCommand{UserID: user.Id})

	var validationErr *common.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "industry")
	// The gate protects the external service: no call may have been issued.
	assert.Zero(t, gen.calls)
}

func TestGenerateUsesExternalServiceWhenConfigured(t *testing.T) {
	db := setupTestDB(t)
	userRepo := postgres.NewUserRepository(db)
	user := completeProfile(t, userRepo, createTestUser(t, userRepo, "jane@example.com"))

	gen := &stubGenerator{responses: []string{
		"  An engaging post about EdTech.  ",
		"EdTech AI edtech #Learning careers extra",
	}}
	svc := NewContentService(userRepo, gen)

	result, err := svc.Generate(context.Background(), &command.GeneratePostCommand{UserID: user.Id})
	require.NoError(t, err)

	assert.Equal(t, command.GenerateSourceAI, result.Source)
	assert.Empty(t, result.Warning)
	assert.Equal(t, "An engaging post about EdTech.", result.Content)
	// Suggested tags come back free-form and get canonicalized.
	assert.Equal(t, "#edtech #ai #learning #careers #extra", result.Hashtags)
	assert.Equal(t, 2, gen.calls)
}

func TestGenerateFallsBackOnServiceError(t *testing.T) {
	db := setupTestDB(t)
	userRepo := postgres.NewUserRepository(db)
	user := completeProfile(t, userRepo, createTestUser(t, userRepo, "jane@example.com"))

	gen := &stubGenerator{err: errors.New("quota exceeded")}
	svc := NewContentService(userRepo, gen)

	result, err := svc.Generate(context.Background(), &command.GeneratePostCommand{UserID: user.Id})
	require.NoError(t, err)

	assert.Equal(t, command.GenerateSourceFallback, result.Source)
	assert.Contains(t, result.Warning, "quota exceeded")
	assert.NotEmpty(t, result.Content)
	assert.Equal(t, "#career #learning #coding", result.Hashtags)
}

func TestGenerateWithoutCredentialNeverFails(t *testing.T) {
	db := setupTestDB(t)
	userRepo := postgres.NewUserRepository(db)
	user := completeProfile(t, userRepo, createTestUser(t, userRepo, "jane@example.com"))

	svc := NewContentService(userRepo, nil)

	first, err := svc.Generate(context.Background(), &command.GeneratePostCommand{UserID: user.Id})
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), &command.GeneratePostCommand{UserID: user.Id})
	require.NoError(t, err)

	assert.Equal(t, command.GenerateSourceFallback, first.Source)
	assert.NotEmpty(t, first.Warning)
	// The fallback path is fully deterministic.
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.Hashtags, second.Hashtags)
}

func TestFallbackPostDeterministic(t *testing.T) {
	c1, h1 := FallbackPost("Jane", "AI Intern", "EdTech", "ml, careers")
	c2, h2 := FallbackPost("Jane", "AI Intern", "EdTech", "ml, careers")

	assert.Equal(t, c1, c2)
	assert.Equal(t, h1, h2)
	assert.Contains(t, c1, "Jane")
	assert.Contains(t, c1, "EdTech")
	assert.Equal(t, FallbackHashtags, h1)
}
