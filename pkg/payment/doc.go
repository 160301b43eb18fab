// Package payment defines the payment behaviors that can be registered in a
// strategy.Registry and resolved by name at runtime.
//
//	payments := strategy.New[payment.Method]()
//	payment.RegisterDefaults(payments)
//
//	method, err := payments.Resolve(payment.KeyPayPal)
//	if err != nil {
//		return err
//	}
//	receipt, err := method.Pay(ctx, 200)
//	fmt.Println(receipt) // Paid 200 using PayPal.
//
// Methods are stateless; the registry builds a new value for every resolution.
package payment
