// Package branch contains the branch record with its daily capacity and
// operating schedule. The workflow engine only reads branches; capacity and
// schedule are replaced as whole values by administrative commands.
package branch
