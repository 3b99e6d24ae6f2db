package main

import "testing"

func TestDifficultyFlagRegistered(t *testing.T) {
	if playCmd.Flags().Lookup("difficulty") == nil {
		t.Fatal("play should register --difficulty")
	}
	if menuCmd.Flags().Lookup("difficulty") == nil {
		t.Fatal("menu should register --difficulty")
	}
}
