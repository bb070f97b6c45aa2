// Package jobs provides scheduled background tasks for the ship notice
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. NoticeSweepJob - Sweeps an inbox directory for order files and generates
// a ship notice document for each one, moving files to a processed or failed
// directory afterward.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep job never stops on a bad order file: the file is moved to the
// failed directory, the error is logged, and the remaining files in the
// inbox are still processed.
package jobs
