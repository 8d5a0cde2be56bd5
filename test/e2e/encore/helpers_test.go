package encore_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/encore/pkg/encoresdk"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for encore end-to-end tests.
 * This includes container setup, account operations, and assertions.
 */

const (
	testImageName = "encore-test:latest"

	testPassword = "Passw0rd!"
	testName     = "Concert Goer"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Encore Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Encore Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/encore/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupContainer starts the service with relaxed rate limits and returns the
// base URL.
func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, map[string]string{
		// Tests make many rapid requests which would otherwise hit the strict production limits
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	})
}

// setupContainerWithDefaultRateLimits starts the service with production
// rate limits, for the rate limiting tests only.
func setupContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, nil)
}

func startContainer(t *testing.T, extraEnv map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"AUTH_ISSUER":    "encore-e2e",
		"AUTH_ALGORITHM": "HS256",
		"ENV":            "test",
		"LOG_LEVEL":      "info",
		"LOG_FORMAT":     "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// registerUser creates an account and returns its session.
func registerUser(t *testing.T, client *encoresdk.SDKClient, email string) *encoresdk.Session {
	t.Helper()

	session, err := client.Register(t.Context(), encoresdk.RegisterRequest{
		Email:    email,
		Password: testPassword,
		Name:     testName,
	})
	require.NoError(t, err, "Register should succeed")
	require.NotEmpty(t, session.Token())
	return session
}

// enableTwoFactor enrolls the session's account and returns the TOTP secret.
func enableTwoFactor(t *testing.T, session *encoresdk.Session) string {
	t.Helper()

	setup, err := session.BeginTwoFactorSetup(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, setup.Secret)
	require.NotEmpty(t, setup.SetupID)

	require.NoError(t, session.ConfirmTwoFactorSetup(t.Context(), currentCode(t, setup.Secret), setup.SetupID))
	return setup.Secret
}

func currentCode(t *testing.T, secret string) string {
	t.Helper()
	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)
	return code
}

// assertStatus checks that err is an API error with the given status.
func assertStatus(t *testing.T, err error, status int, context string) {
	t.Helper()
	require.Error(t, err, context)
	require.Equal(t, status, encoresdk.StatusOf(err), "%s - got: %v", context, err)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *encoresdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

func concertRequest(name, genre, price, location string, daysAhead int) encoresdk.ConcertRequest {
	return encoresdk.ConcertRequest{
		Name:     name,
		Genre:    genre,
		Price:    price,
		Location: location,
		Date:     time.Now().AddDate(0, 0, daysAhead).Format("2006-01-02"),
		ImageURL: "/EventPageImages/images.jpeg",
	}
}
