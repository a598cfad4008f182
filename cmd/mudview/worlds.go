package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// worldEntry is one named server in a -worlds YAML file, grounded on
// the twilight_bbs config loader's plain-struct + yaml tag style.
type worldEntry struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type worldList struct {
	Worlds map[string]worldEntry `yaml:"worlds"`
}

func loadWorlds(path string) (worldList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return worldList{}, fmt.Errorf("read worlds file %s: %w", path, err)
	}
	var list worldList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return worldList{}, fmt.Errorf("parse worlds file %s: %w", path, err)
	}
	return list, nil
}

// resolveAddr picks the host:port to dial: either -host/-port directly,
// or a named lookup in -worlds.
func resolveAddr(host string, port int, world, worldsFile string) (string, error) {
	if world != "" {
		if worldsFile == "" {
			return "", fmt.Errorf("-world requires -worlds")
		}
		list, err := loadWorlds(worldsFile)
		if err != nil {
			return "", err
		}
		entry, ok := list.Worlds[world]
		if !ok {
			return "", fmt.Errorf("no world named %q in %s", world, worldsFile)
		}
		return fmt.Sprintf("%s:%d", entry.Host, entry.Port), nil
	}
	if host == "" {
		return "", fmt.Errorf("either -host or -world is required")
	}
	return fmt.Sprintf("%s:%d", host, port), nil
}
