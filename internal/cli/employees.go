package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/asset-tracker/internal/domain"
	"github.com/asset-tracker/internal/dto"
	"github.com/asset-tracker/internal/ui"
)

func newEmployeesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Add, update, list and delete employees",
	}
	cmd.AddCommand(
		newEmployeesAddCmd(a),
		newEmployeesUpdateCmd(a),
		newEmployeesListCmd(a),
		newEmployeesNamesCmd(a),
		newEmployeesDeleteCmd(a),
	)
	return cmd
}

func newEmployeesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			employees, err := a.empService.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(employees) == 0 {
				fmt.Fprintln(out, ui.FormatWarning("No employees found"))
				return nil
			}

			table := ui.NewTable(
				ui.TableColumn{Header: "ID", Align: ui.AlignRight},
				ui.TableColumn{Header: "Name"},
				ui.TableColumn{Header: "Position"},
				ui.TableColumn{Header: "Hired"},
				ui.TableColumn{Header: "Department"},
				ui.TableColumn{Header: "Supervisor"},
				ui.TableColumn{Header: "Salary", Align: ui.AlignRight},
			)
			for _, e := range employees {
				table.AddRow(
					strconv.FormatInt(e.ID, 10),
					e.Name,
					e.Position,
					e.HireDate,
					e.Department,
					e.Supervisor,
					strconv.FormatFloat(e.Salary, 'f', 2, 64),
				)
			}
			fmt.Fprint(out, table.Render())
			fmt.Fprintln(out, ui.FormatMuted(fmt.Sprintf("%d employee(s)", len(employees))))
			return nil
		},
	}
}

func newEmployeesNamesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "Print distinct employee names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := a.empService.Names(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderList(names))
			return nil
		},
	}
}

func newEmployeesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an employee by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.empService.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess(fmt.Sprintf("Employee %d deleted", id)))
			return nil
		},
	}
}

type employeeFlags struct {
	name       string
	position   string
	hireDate   string
	department string
	supervisor string
	salary     string
}

func (f *employeeFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", "Full name")
	flags.StringVar(&f.position, "position", "", "Position")
	flags.StringVar(&f.hireDate, "hire-date", "", "Hire date, DD-MM-YYYY")
	flags.StringVar(&f.department, "department", "", "Department")
	flags.StringVar(&f.supervisor, "supervisor", "", "Supervisor")
	flags.StringVar(&f.salary, "salary", "", "Salary")
}

func (f *employeeFlags) apply(cmd *cobra.Command, req *dto.EmployeeRequest) error {
	overlay(cmd, []textFlag{
		{name: "name", value: &f.name, dst: &req.Name},
		{name: "position", value: &f.position, dst: &req.Position},
		{name: "hire-date", value: &f.hireDate, dst: &req.HireDate},
		{name: "department", value: &f.department, dst: &req.Department},
		{name: "supervisor", value: &f.supervisor, dst: &req.Supervisor},
	})
	return overlayDecimal(cmd, "salary", f.salary, &req.Salary)
}

func employeeRequestFrom(e *domain.Employee) *dto.EmployeeRequest {
	salary := e.Salary
	return &dto.EmployeeRequest{
		Name:       e.Name,
		Position:   e.Position,
		HireDate:   e.HireDate,
		Department: e.Department,
		Supervisor: e.Supervisor,
		Salary:     &salary,
	}
}

func newEmployeesAddCmd(a *app) *cobra.Command {
	fields := &employeeFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		Long: `Add an employee.

Required: --name --position --hire-date --salary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := &dto.EmployeeRequest{}
			if err := fields.apply(cmd, req); err != nil {
				return err
			}

			employee, err := a.empService.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess(fmt.Sprintf("Employee %d added", employee.ID)))
			return nil
		},
	}
	fields.bind(cmd)

	return cmd
}

func newEmployeesUpdateCmd(a *app) *cobra.Command {
	fields := &employeeFlags{}

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an employee, changing only the given fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			current, err := a.empService.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			req := employeeRequestFrom(current)
			if err := fields.apply(cmd, req); err != nil {
				return err
			}

			if _, err := a.empService.Update(cmd.Context(), id, req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess(fmt.Sprintf("Employee %d updated", id)))
			return nil
		},
	}
	fields.bind(cmd)

	return cmd
}
