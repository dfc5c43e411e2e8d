// Package report presents and archives evaluation results.
//
// WriteSummary and WriteChart render a single model.Report as text;
// WriteSweep renders a whole sweep as a table. Archive persists reports to a
// blobstore.BlobStore using the self-describing codec envelope.
package report
