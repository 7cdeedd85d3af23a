/*
* Loads the scoring policy from an optional YAML file.
 */
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sinclairtarget/git-impact/internal/impact"
)

// Policy file looked for in the working directory when no -config flag is
// given.
const DefaultPath = ".git-impact.yaml"

// Pointer fields distinguish a weight set to zero from one left out.
type policyFile struct {
	CommitWeight   *float64 `yaml:"commit_weight"`
	AdditionWeight *float64 `yaml:"addition_weight"`
	DeletionWeight *float64 `yaml:"deletion_weight"`
	MergeWindow    string   `yaml:"merge_window"`
}

// Load reads the policy file at path and layers it over the default policy.
// Fields missing from the file keep their defaults.
func Load(path string) (impact.Policy, error) {
	policy := impact.DefaultPolicy()

	data, err := os.ReadFile(path)
	if err != nil {
		return policy, fmt.Errorf("could not read config file: %w", err)
	}

	var f policyFile
	err = yaml.Unmarshal(data, &f)
	if err != nil {
		return policy, fmt.Errorf(
			"could not parse config file \"%s\": %w",
			path,
			err,
		)
	}

	if f.CommitWeight != nil {
		policy.CommitWeight = *f.CommitWeight
	}
	if f.AdditionWeight != nil {
		policy.AdditionWeight = *f.AdditionWeight
	}
	if f.DeletionWeight != nil {
		policy.DeletionWeight = *f.DeletionWeight
	}
	if f.MergeWindow != "" {
		window, err := time.ParseDuration(f.MergeWindow)
		if err != nil {
			return policy, fmt.Errorf(
				"bad merge_window in config file \"%s\": %w",
				path,
				err,
			)
		}

		policy.MergeWindow = window
	}

	err = policy.Validate()
	if err != nil {
		return policy, fmt.Errorf(
			"invalid policy in config file \"%s\": %w",
			path,
			err,
		)
	}

	logger().Debug("loaded policy", "path", path)
	return policy, nil
}

// Discover returns the policy at path when one is given. Otherwise it tries
// DefaultPath, falling back to the default policy when no file exists there.
func Discover(path string) (impact.Policy, error) {
	if path != "" {
		return Load(path)
	}

	policy, err := Load(DefaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return impact.DefaultPolicy(), nil
	}

	return policy, err
}
