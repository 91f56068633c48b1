package auth

import (
	"context"
	"errors"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/Barento999/ecommerce-spa-sub001/config"
)

// InitFirebaseApp initializes the Firebase Admin SDK app. Credentials come from
// cfg.CredentialsFile, a single *-firebase-adminsdk-*.json in the working
// directory, or Application Default Credentials, in that order.
func InitFirebaseApp(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	var opts []option.ClientOption

	cred := cfg.CredentialsFile
	if cred == "" {
		// Local dev convenience: pick up a downloaded service account key.
		matches, _ := filepath.Glob("*-firebase-adminsdk-*.json")
		switch len(matches) {
		case 0:
		case 1:
			cred = matches[0]
		default:
			return nil, errors.New("multiple firebase service account json files found in working directory; set GOOGLE_APPLICATION_CREDENTIALS explicitly")
		}
	}
	if cred != "" {
		opts = append(opts, option.WithCredentialsFile(cred))
	}

	var fbCfg *firebase.Config
	if cfg.ProjectID != "" {
		fbCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}
	return firebase.NewApp(ctx, fbCfg, opts...)
}
