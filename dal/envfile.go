package dal

import (
	"fmt"
	"github.com/Etch-Social/etch-local/shared"
	"os"
	"strings"
	"sync"
)

// EnvFileStore persists settings as KEY=VALUE lines in a flat env-style
// file. It is the fallback backing store when the database is unavailable;
// values present in the process environment win over the file on reads.
type EnvFileStore struct {
	cfg    *shared.Config
	logger shared.ILogger
	mu     sync.Mutex
}

func NewEnvFileStore(cfg *shared.Config, logger shared.ILogger) ISettingsBackend {
	return &EnvFileStore{cfg: cfg, logger: logger}
}

func (efs *EnvFileStore) GetSetting(name string) (string, bool, error) {
	if val, ok := os.LookupEnv(name); ok {
		return val, true, nil
	}

	efs.mu.Lock()
	defer efs.mu.Unlock()

	lines, err := efs.readLines()
	if err != nil {
		return "", false, err
	}
	for _, line := range lines {
		if strings.HasPrefix(line, name+"=") {
			return decodeEnvValue(strings.TrimPrefix(line, name+"=")), true, nil
		}
	}
	return "", false, nil
}

func (efs *EnvFileStore) SetSetting(name, val string) error {
	efs.mu.Lock()
	defer efs.mu.Unlock()

	lines, err := efs.readLines()
	if err != nil {
		return err
	}
	newLine := name + "=" + encodeEnvValue(val)
	replaced := false
	for i, line := range lines {
		if strings.HasPrefix(line, name+"=") {
			lines[i] = newLine
			replaced = true
			break
		}
	}
	if !replaced {
		lines = append(lines, newLine)
	}
	return efs.writeLines(lines)
}

func (efs *EnvFileStore) RemoveSetting(name string) error {
	efs.mu.Lock()
	defer efs.mu.Unlock()

	lines, err := efs.readLines()
	if err != nil {
		return err
	}
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if !strings.HasPrefix(line, name+"=") {
			kept = append(kept, line)
		}
	}
	return efs.writeLines(kept)
}

func (efs *EnvFileStore) readLines() ([]string, error) {
	data, err := os.ReadFile(efs.cfg.EnvFile)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read env file '%s': %v", efs.cfg.EnvFile, err)
	}
	var res []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			res = append(res, line)
		}
	}
	return res, nil
}

func (efs *EnvFileStore) writeLines(lines []string) error {
	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(efs.cfg.EnvFile, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write env file '%s': %v", efs.cfg.EnvFile, err)
	}
	return nil
}

// Values may contain newlines (JWK JSON); they are stored escaped so the
// file stays line-oriented.
func encodeEnvValue(val string) string {
	val = strings.ReplaceAll(val, "\\", "\\\\")
	return strings.ReplaceAll(val, "\n", "\\n")
}

func decodeEnvValue(val string) string {
	var sb strings.Builder
	for i := 0; i < len(val); i++ {
		if val[i] == '\\' && i+1 < len(val) {
			switch val[i+1] {
			case 'n':
				sb.WriteByte('\n')
				i++
				continue
			case '\\':
				sb.WriteByte('\\')
				i++
				continue
			}
		}
		sb.WriteByte(val[i])
	}
	return sb.String()
}
