// Package timestamp resolves the creation or modification time of a file and
// converts it into UTC calendar fields.
//
// Creation (birth) time is read with a platform probe: statx(2) with
// STATX_BTIME on Linux, st_birthtimespec on Darwin, and the creation time
// recorded in the Win32 file attributes on Windows. When the probe reports
// that the filesystem does not record birth time the resolver returns
// faults.ErrCreationTimeUnavailable; any other failure is faults.ErrIO.
// Error-code classification (ENOSYS, EOPNOTSUPP) is used only where the
// kernel gives no better signal.
package timestamp
