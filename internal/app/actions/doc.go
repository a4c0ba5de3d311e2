// Package actions holds the actions the service exposes, built on the
// pipeline package and the store ports:
//
//   - getGalleryItems lists a window of gallery items (service, read-only).
//   - setFollowingStatus follows or unfollows a person and queues the
//     follow-up work (service, task handler).
//   - refreshFollowerCount recomputes a follower count (background).
//   - createNotification records a follow notification (background).
//
// Register wires all of them into an app.Registry.
package actions
