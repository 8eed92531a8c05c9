package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// promptAuthCode reads the pasted authorization code from stdin.
func promptAuthCode() (string, error) {
	fmt.Print("Paste the authorization code: ")

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read authorization code: %w", err)
	}
	return strings.TrimSpace(input), nil
}
