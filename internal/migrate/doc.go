// Package migrate implements the batch repository migration workflow: discover local
// repositories, report the planned migrations, confirm once, then create hosted
// repositories, repoint remotes, and push all branches sequentially.
package migrate
