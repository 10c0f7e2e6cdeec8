// Package deployment implements the pod deployment workflow.
//
// A deployment runs in two sequential phases:
//
//  1. Submit sends exactly one provisioning request built from a Request,
//     derives the access URLs from the returned pod id and writes a Record
//     to a local JSON file.
//  2. Wait polls the record's HTTP access URL at a fixed interval until the
//     pod answers 200 OK or the attempt budget is exhausted.
//
// Neither phase is resumable. A failed submission produces no record and no
// file; a timed-out wait leaves the pod running.
package deployment
