// Package options holds the configuration shared by class lists and style
// blocks together with the caches compiled under it.
//
// Options can be built in code (Default), decoded from YAML (Load,
// LoadFile), read from the environment (FromEnv) and kept in sync with a
// file on disk (Watch).
package options
