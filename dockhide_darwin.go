//go:build darwin
// +build darwin

package main

// The shell lives in the menu bar, not the dock: switching NSApp to the
// accessory activation policy removes the dock tile and the CMD+Tab
// entry while the tray icon stays. Must run on the main queue.

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>

void UseAccessoryActivationPolicy() {
    dispatch_async(dispatch_get_main_queue(), ^{
        [NSApp setActivationPolicy:NSApplicationActivationPolicyAccessory];
    });
}
*/
import "C"

func hideAppFromDock() {
	C.UseAccessoryActivationPolicy()
}
