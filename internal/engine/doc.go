// Package engine turns a raw configuration tree into a validated execution
// context: conversion, cascading and validation run in that order, once per
// invocation.
package engine
