// Package jsonscan walks JSON documents without building a tree.
//
// It wraps the pull-style tokenizer from github.com/buger/jsonparser. Every
// key and value handed to a callback is a sub-slice of the caller's buffer:
// string values arrive without their quotes and with escape sequences left
// as-is, objects and arrays arrive with their brackets. Nothing is copied, so
// the slices are valid only while the input buffer is.
//
// Typical use:
//
//	data, err := jsonscan.Validate(raw)
//	if err != nil {
//		return err
//	}
//	info, err := jsonscan.SingleKey(data, "ChannelInfo", jsonscan.Object)
//	if err != nil {
//		return err
//	}
//	err = jsonscan.Members(info, func(key, value []byte, typ jsonscan.Type) error {
//		// unknown keys are simply not matched
//		return nil
//	})
package jsonscan
