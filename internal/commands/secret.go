package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

var secretBytes int

// secretCmd generates a random signing secret
// This is the executable form of the recipe the readiness gate prints
// for JWT_SECRET_KEY - same output shape as
// python -c "import secrets; print(secrets.token_hex(32))"
var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Generate a random signing secret",
	Long: `Generate a cryptographically random hex string suitable for
JWT_SECRET_KEY or similar signing secrets.

The secret is printed to stdout with no decoration, so it can be piped
or pasted directly into the Railway dashboard.

Examples:
  # 64 hex characters (32 random bytes, the default)
  railway-deploy secret

  # Longer secret
  railway-deploy secret --bytes 48`,
	RunE: secretRun,
}

func init() {
	secretCmd.Flags().IntVar(&secretBytes, "bytes", 32,
		"number of random bytes (output is twice as many hex characters)")

	rootCmd.AddCommand(secretCmd)
}

func secretRun(cmd *cobra.Command, args []string) error {
	secret, err := GenerateSecret(secretBytes)
	if err != nil {
		return err
	}

	// Bare output on purpose: no [INFO] prefix, no color, pipe-friendly
	fmt.Println(secret)
	return nil
}

// GenerateSecret returns n random bytes hex-encoded
// Anything below 16 bytes is refused - a short signing secret defeats
// the point of generating one.
func GenerateSecret(n int) (string, error) {
	if n < 16 {
		return "", fmt.Errorf("secret must be at least 16 bytes, got %d", n)
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
