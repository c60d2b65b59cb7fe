//go:build darwin
// +build darwin

package main

// An accessory-policy app (see dockhide_darwin.go) is never frontmost, so
// the webview's own Focus call is not enough to make its window key;
// the application has to be activated first, and on the main queue.

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>

void ActivateAndFocusMainWindow() {
    dispatch_async(dispatch_get_main_queue(), ^{
        [NSApp activateIgnoringOtherApps:YES];
        [[NSApp mainWindow] makeKeyAndOrderFront:nil];
    });
}
*/
import "C"

func focusAppWindow() {
	C.ActivateAndFocusMainWindow()
}
