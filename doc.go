// Package tmpfile provides temporary files that are removed once no longer referenced.
//
// Every file gets a unique name in the form <prefix><six random symbols><suffix>,
// and is created exclusively: a file that exists already is never opened.
//
// The same file can be held in one of three representations,
// which differ only in what they expose of the open file:
//
//	File        the raw OS handle (a descriptor on unix, a HANDLE on Windows)
//	Descriptor  an *os.File
//	Stream      a *Buffered reader and/or writer
//
// Conversions between them move the file; only one representation holds it at a time.
//
// Values sharing a file are obtained by Clone. The file is released when the last of
// them has been closed, or when any of them is Reset: first its resource is closed,
// then it is removed from disk, unless it has been detached.
//
// Construction does not panic on environmental failures, but returns an error
// alongside a value that is not valid. Check IsValid, or the error, before use.
// The only panic is for an OpenMode with Binary, but neither Read nor Write.
//
// An example:
//
//	f, err := tmpfile.NewDescriptor(tmpfile.Options{Prefix: "upload-", Suffix: ".part"})
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//	io.Copy(f.File(), r)
package tmpfile // import "blitznote.com/src/tmpfile"
