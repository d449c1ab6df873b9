package cliconfig

import "os"

// ApplyEnvConfig applies PAYPROBE_* environment variables, skipping flags in
// changed. It fails on values that do not parse.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("endpoint", os.Getenv("PAYPROBE_ENDPOINT"), &cfg.Endpoint)
	s.setString("secret-key", os.Getenv("PAYPROBE_SECRET_KEY"), &cfg.SecretKey)
	s.setString("catalog", os.Getenv("PAYPROBE_CATALOG"), &cfg.Catalog)
	s.setString("trials", os.Getenv("PAYPROBE_TRIALS_FILE"), &cfg.TrialsFile)
	s.setString("cpf", os.Getenv("PAYPROBE_CPF"), &cfg.CPF)
	s.setString("log-level", os.Getenv("PAYPROBE_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("timeout", os.Getenv("PAYPROBE_TIMEOUT"), &cfg.Timeout); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("PAYPROBE_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}
	if err := s.setIntFromString("max-body-bytes", os.Getenv("PAYPROBE_MAX_BODY_BYTES"), &cfg.MaxBodyBytes); err != nil {
		return err
	}
	if err := s.setIntFromString("amount", os.Getenv("PAYPROBE_AMOUNT"), &cfg.Amount); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("PAYPROBE_WATCH"), &cfg.Watch)
	return nil
}
