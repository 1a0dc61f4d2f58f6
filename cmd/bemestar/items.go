package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/scrypster/bemestar/internal/engine"
	"github.com/scrypster/bemestar/pkg/types"
)

// itemsFile is the YAML layout accepted by --items:
//
//	items:
//	  - title: Reunião de trabalho
//	    category: appointment
//	    date: 2026-10-14
//	    duration_minutes: 60
//	    energy_cost: 8
//	    priority: high
type itemsFile struct {
	Items []types.ScheduleItem `yaml:"items"`
}

func loadItems(path string) ([]types.ScheduleItem, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var f itemsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f.Items, nil
}

// weeksFile is the YAML layout accepted by progress --samples:
//
//	weeks:
//	  - {label: S1, mood: 6.5, energy: 7, goals: 8, social: 5}
type weeksFile struct {
	Weeks []engine.WeeklySample `yaml:"weeks"`
}

func loadWeeks(path string) ([]engine.WeeklySample, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var f weeksFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f.Weeks, nil
}
