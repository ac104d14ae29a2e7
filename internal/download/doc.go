// Package download provides the download orchestration logic for
// fetching imgur albums.
//
// # Manager
//
// The Manager coordinates the entire download process:
//
//  1. Resolve the album reference to an id
//  2. Fetch album metadata from the imgur API
//  3. Create the destination directory (named after the album id)
//  4. Download media items concurrently, skipping items whose local file
//     already has the expected size
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx, "https://imgur.com/a/vNOUshX"); err != nil {
//	    log.Fatal(err) // fatal: nothing to download without metadata
//	}
//
//	if err := manager.StartDownloads(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// At most Settings.MaxConcurrentDownloads items (default 2) are in their
// network/IO phase at once; remaining items queue until a slot frees. No
// ordering is guaranteed between item completions. File naming depends only
// on metadata order, not completion order.
//
// # Failure Isolation
//
// An item's failure (fetch error, non-success status, local IO error) is
// caught at the task boundary, reported via the progress callback with the
// item's URL, destination path and cause, and converted into a failed
// counter increment. It never propagates to sibling tasks and never makes
// StartDownloads return an error. Cancelling the context is different: it
// aborts the whole batch and StartDownloads returns the context's error.
// There is no retry at any level.
//
// # Skip Decision
//
// A destination file whose length exactly equals the expected size is
// skipped; any other length (including zero) means truncate and
// re-download from byte zero. The expected size normally comes from album
// metadata, which imgur sometimes reports incorrectly, causing false skips
// and needless re-downloads. Settings.VerifySizeWithHead
// substitutes a per-item HEAD Content-Length when enabled.
package download
