// Package lib holds modules that do not fit strictly into the other
// layers: background job processing (Redis/Asynq) and the email client
// integration (Resend).
package lib
