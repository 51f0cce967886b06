// Package authz decides which role may call which workflow operation. Rules
// live in the casbin_rule table and are seeded with DefaultPolicies.
package authz

import (
	"context"
	"fmt"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

const (
	tableName = "casbin_rule"
	anyOp     = "*"
)

const rbacModel = `
[request_definition]
r = sub, op

[policy_definition]
p = sub, op

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (r.op == p.op || p.op == "*")
`

// Policy grants one operation to one role. Op "*" grants everything.
type Policy struct {
	Role access.Role
	Op   string
}

// DefaultPolicies is the permission matrix seeded into an empty table. The
// workflow still checks scope and the transition table after this gate.
func DefaultPolicies() []Policy {
	grant := func(role access.Role, ops ...ports.Operation) []Policy {
		out := make([]Policy, 0, len(ops))
		for _, op := range ops {
			out = append(out, Policy{Role: role, Op: string(op)})
		}
		return out
	}

	var policies []Policy
	policies = append(policies, grant(access.Customer,
		ports.OpCreateOrder, ports.OpReadOrder, ports.OpTransitionStatus)...)
	policies = append(policies, grant(access.BranchManager,
		ports.OpReadOrder, ports.OpAssignBranch, ports.OpAssignLogistics, ports.OpAssignStaff,
		ports.OpTransitionStatus, ports.OpManageBranch, ports.OpManageStaff)...)
	policies = append(policies, grant(access.BranchStaff,
		ports.OpReadOrder, ports.OpTransitionStatus)...)
	policies = append(policies, grant(access.LogisticsAgent,
		ports.OpReadOrder, ports.OpTransitionStatus)...)
	policies = append(policies, grant(access.SupportAgent,
		ports.OpCreateOrder, ports.OpReadOrder, ports.OpTransitionStatus)...)
	policies = append(policies, Policy{Role: access.Admin, Op: anyOp})
	return policies
}

var _ ports.OperationAuthorizer = (*CasbinAuthorizer)(nil)

type CasbinAuthorizer struct {
	enforcer *casbin.SyncedEnforcer
}

// NewCasbinAuthorizer loads policies from db, creating the table if needed.
func NewCasbinAuthorizer(db *gorm.DB) (*CasbinAuthorizer, error) {
	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", tableName)
	if err != nil {
		return nil, fmt.Errorf("create authz adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("load authz model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("init authz enforcer: %w", err)
	}
	enforcer.EnableAutoSave(true)

	if err = enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load authz policy: %w", err)
	}
	return &CasbinAuthorizer{enforcer: enforcer}, nil
}

// Seed adds DefaultPolicies when the table holds no policy yet, so operators'
// edits survive restarts.
func (a *CasbinAuthorizer) Seed() error {
	existing, err := a.enforcer.GetPolicy()
	if err != nil {
		return fmt.Errorf("read authz policy: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	rules := make([][]string, 0, len(DefaultPolicies()))
	for _, p := range DefaultPolicies() {
		rules = append(rules, []string{p.Role.String(), p.Op})
	}
	if _, err = a.enforcer.AddPolicies(rules); err != nil {
		return fmt.Errorf("seed authz policy: %w", err)
	}
	return nil
}

func (a *CasbinAuthorizer) Grant(role access.Role, op ports.Operation) error {
	_, err := a.enforcer.AddPolicy(role.String(), string(op))
	return err
}

func (a *CasbinAuthorizer) Revoke(role access.Role, op ports.Operation) error {
	_, err := a.enforcer.RemovePolicy(role.String(), string(op))
	return err
}

func (a *CasbinAuthorizer) Authorize(_ context.Context, role access.Role, op ports.Operation) error {
	allowed, err := a.enforcer.Enforce(role.String(), string(op))
	if err != nil {
		return errs.NewInfrastructureError("authorize", err)
	}
	if !allowed {
		return errs.NewForbiddenError(fmt.Sprintf("%s may not call %s", role, op))
	}
	return nil
}
